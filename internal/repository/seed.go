package repository

import (
	"fmt"
	"time"

	"github.com/bds22000-prog/kyclean/internal/auth"
	"github.com/bds22000-prog/kyclean/internal/models"
)

const seedPassword = "1234"

// SeedDemo наполняет хранилища демонстрационными данными офиса Кызылорды.
// Используется при SEED_DEMO_DATA=true; в остальных случаях сервис
// стартует с пустыми реестрами.
func SeedDemo(
	waste *WasteRepository,
	recycling *RecyclingRepository,
	clients *ClientRepository,
	employees *EmployeeRepository,
) error {
	if err := seedEmployees(employees); err != nil {
		return err
	}
	if err := seedClients(clients); err != nil {
		return err
	}
	if err := seedRecords(waste, recycling); err != nil {
		return err
	}
	return nil
}

func seedEmployees(employees *EmployeeRepository) error {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	seed := []models.Employee{
		{ID: "admin", EmpNo: "WY-0000", Name: "관리자", NameCyr: "admin", Role: models.RoleAdmin, Department: "admin", Company: "WY",
			AllowedMenus: []string{"dashboard", "waste", "recycling", "documents", "schedule", "hr", "attendance", "finance", "approval", "settings"}},
		{ID: "0001", EmpNo: "WY-0001", Name: "황성신", NameCyr: "Хван Сон Шин", Role: models.RoleManager, Department: "대표", Company: "WY"},
		{ID: "0002", EmpNo: "WY-0002", Name: "배대식", NameCyr: "Бэ Дэ Сик", Role: models.RoleManager, Department: "부대표", Company: "WY"},
		{ID: "0007", EmpNo: "WY-0007", Name: "에르란", NameCyr: "Эрлан", Role: models.RoleManager, Department: "부사장", Company: "WY"},
		{ID: "0009", EmpNo: "WY-0009", Name: "마리나", NameCyr: "Марина", Role: models.RoleStaff, Department: "공무", Company: "WY"},
		{ID: "0012", EmpNo: "WY-0012", Name: "아타잔", NameCyr: "Атажан", Role: models.RoleManager, Department: "사장", Company: "SK"},
		{ID: "0015", EmpNo: "WY-0015", Name: "자나르벡", NameCyr: "Жанарбек", Role: models.RoleStaff, Department: "환경", Company: "WY"},
		{ID: "0016", EmpNo: "WY-0016", Name: "사맛", NameCyr: "Самат", Role: models.RoleStaff, Department: "반장", Company: "WY"},
		{ID: "0024", EmpNo: "WY-0024", Name: "아이잔", NameCyr: "Айжан", Role: models.RoleStaff, Department: "회계", Company: "WY"},
		{ID: "0026", EmpNo: "WY-0026", Name: "랴일랴", NameCyr: "Ляйля", Role: models.RoleStaff, Department: "요리사", Company: "WY"},
	}

	for _, employee := range seed {
		employee.PasswordHash = hash
		if _, err := employees.Create(employee); err != nil {
			return fmt.Errorf("seed employee %s: %w", employee.EmpNo, err)
		}
	}
	return nil
}

func seedClients(clients *ClientRepository) error {
	seed := []models.Client{
		{ID: "c-1", Name: `위드유이앤씨 크즐로르다" 유한회사`, NameCyr: `TOO "With You E&C Kyzylorda"`, DefaultFeePerTon: 2200, RegistrationDate: "2023-01-01"},
		{ID: "c-2", Name: "알렘 쿠루일리스 AQ 유한회사", NameCyr: `TOO "Alem Kurylys AQ"`, DefaultFeePerTon: 2200, RegistrationDate: "2023-08-05"},
		{ID: "c-3", Name: "에코오일 그룹 유한회사", NameCyr: "EcoOil Group TOO", DefaultFeePerTon: 2500, RegistrationDate: "2023-05-12"},
		{ID: "c-5", Name: "바이샷 개인사업자", NameCyr: `IP "Bayshat"`, DefaultFeePerTon: 2200, RegistrationDate: "2023-11-15"},
		{ID: "c-11", Name: "잘가스 컴퍼니 및 K 유한회사", NameCyr: `TOO "Zhalgas Company & K"`, DefaultFeePerTon: 2200, RegistrationDate: "2024-03-15"},
		{ID: "c-12", Name: "크즐로르다 타잘륵 유한회사", NameCyr: `TOO "Kyzylorda Tazalyk"`, DefaultFeePerTon: 2200, RegistrationDate: "2022-10-01"},
		{ID: "c-13", Name: "크즐로르다 시 주택및공공서비스,여객운송및자동차도로국", NameCyr: "Акимат г. Кызылорда ЖКХ", DefaultFeePerTon: 2200, RegistrationDate: "2022-11-20"},
		{ID: "c-16", Name: "형사집행위원회 제60호 주립기관", NameCyr: "РГУ Учреждение №60 КУИС", DefaultFeePerTon: 2200, RegistrationDate: "2024-05-01"},
	}

	for _, client := range seed {
		if _, err := clients.Create(client); err != nil {
			return fmt.Errorf("seed client %s: %w", client.ID, err)
		}
	}
	return nil
}

func seedRecords(waste *WasteRepository, recycling *RecyclingRepository) error {
	today := time.Now().Format("2006-01-02")

	wasteSeed := []models.WasteEntry{
		{ID: "w-1", VehicleNumber: "KZ 001 ABC", ClientName: `위드유이앤씨 크즐로르다" 유한회사`, ClientNameCyr: `TOO "With You E&C Kyzylorda"`, Type: models.WasteGeneral, WeightTons: 12.5, EntryDate: today, CostKZT: 27500},
		{ID: "w-2", VehicleNumber: "KZ 777 ZZZ", ClientName: "에코오일 그룹 유한회사", ClientNameCyr: "EcoOil Group TOO", Type: models.WasteConstruction, WeightTons: 24.0, EntryDate: today, CostKZT: 60000},
		{ID: "w-3", VehicleNumber: "KZ 123 KYZ", ClientName: "크즐오르다 시 주택및공공서비스,여객운송및자동차도로국", ClientNameCyr: "Акимат города Кызылорда", Type: models.WasteGeneral, WeightTons: 8.2, EntryDate: today, CostKZT: 18000},
		{ID: "w-4", VehicleNumber: "KZ 444 ABZ", ClientName: "알렘 쿠루일리스 AQ 유한회사", ClientNameCyr: `TOO "Alem Kurylys AQ"`, Type: models.WasteGeneral, WeightTons: 15.5, EntryDate: today, CostKZT: 34100},
	}
	for _, entry := range wasteSeed {
		if _, err := waste.Create(entry); err != nil {
			return fmt.Errorf("seed waste entry %s: %w", entry.ID, err)
		}
	}

	recyclingSeed := []models.RecyclingRecord{
		{ID: "r-1", VendorName: "위드유이앤씨", VendorNameCyr: `TOO "With You"`, Type: models.RecyclingPaper, Action: models.ActionSorting, Count: 500, WeightTons: 1.2, Date: today, AmountKZT: 150000, SortingPersonnel: 5},
		{ID: "r-2", VendorName: "에코오일 그룹", VendorNameCyr: "EcoOil Group", Type: models.RecyclingPlastic, Action: models.ActionOutbound, Count: 200, WeightTons: 0.8, Date: today, AmountKZT: 450000},
	}
	for _, record := range recyclingSeed {
		if _, err := recycling.Create(record); err != nil {
			return fmt.Errorf("seed recycling record %s: %w", record.ID, err)
		}
	}

	return nil
}
