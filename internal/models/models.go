package models

import "time"

type UserRole string

type WasteType string

type RecyclingType string

type RecyclingAction string

const (
	RoleAdmin   UserRole = "Admin"
	RoleManager UserRole = "Manager"
	RoleStaff   UserRole = "Staff"

	WasteGeneral      WasteType = "General"
	WasteConstruction WasteType = "Construction"
	WasteMedical      WasteType = "Medical"

	RecyclingPaper   RecyclingType = "Paper"
	RecyclingGlass   RecyclingType = "Glass"
	RecyclingCan     RecyclingType = "Can"
	RecyclingPlastic RecyclingType = "Plastic"
	RecyclingMedical RecyclingType = "Medical"
	RecyclingOther   RecyclingType = "Other"

	ActionSorting  RecyclingAction = "Sorting"
	ActionOutbound RecyclingAction = "Outbound"
)

// WasteEntry - запись о приеме отходов на полигон (весовая).
type WasteEntry struct {
	ID            string    `json:"id"`
	VehicleNumber string    `json:"vehicle_number"`
	ClientName    string    `json:"client_name"`
	ClientNameCyr string    `json:"client_name_cyrillic,omitempty"`
	Type          WasteType `json:"type"`
	WeightTons    float64   `json:"weight_tons"`
	EntryDate     string    `json:"entry_date"` // YYYY-MM-DD
	CostKZT       int64     `json:"cost_kzt"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecyclingRecord - запись сортировки или отгрузки вторсырья.
type RecyclingRecord struct {
	ID               string          `json:"id"`
	VendorName       string          `json:"vendor_name"`
	VendorNameCyr    string          `json:"vendor_name_cyrillic,omitempty"`
	Type             RecyclingType   `json:"type"`
	Action           RecyclingAction `json:"action"`
	Count            int64           `json:"count"`
	WeightTons       float64         `json:"weight_tons"`
	Date             string          `json:"date"` // YYYY-MM-DD
	AmountKZT        int64           `json:"amount_kzt"`
	SortingPersonnel int             `json:"sorting_personnel,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// LedgerEntry - начислено/оплачено по клиенту за один месяц.
type LedgerEntry struct {
	BilledKZT int64 `json:"billed_kzt"`
	PaidKZT   int64 `json:"paid_kzt"`
}

// Client - контрагент полигона с помесячной ведомостью расчетов.
// MonthlyLedger ключуется месяцем YYYY-MM; отсутствие записи читается как нули.
type Client struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	NameCyr          string                 `json:"name_cyrillic,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	DefaultFeePerTon int64                  `json:"default_fee_per_ton"`
	RegistrationDate string                 `json:"registration_date,omitempty"`
	MonthlyLedger    map[string]LedgerEntry `json:"monthly_ledger"`
}

// Employee - сотрудник; одновременно учетная запись для входа.
type Employee struct {
	ID              string   `json:"id"`
	EmpNo           string   `json:"emp_no"`
	Name            string   `json:"name"`
	NameCyr         string   `json:"name_cyrillic,omitempty"`
	Role            UserRole `json:"role"`
	Department      string   `json:"department,omitempty"`
	Company         string   `json:"company,omitempty"`
	PasswordHash    string   `json:"-"`
	JoinDate        string   `json:"join_date,omitempty"`
	ResignationDate string   `json:"resignation_date,omitempty"`
	AllowedMenus    []string `json:"allowed_menus,omitempty"`
}

// Active сообщает, числится ли сотрудник (нет даты увольнения).
func (e Employee) Active() bool {
	return e.ResignationDate == ""
}

// PayrollRow - строка расчета зарплаты за месяц, все суммы в целых тенге.
// "На руки" и общая стоимость для работодателя не хранятся: они выводятся
// из текущих значений ячеек при каждом чтении.
type PayrollRow struct {
	GrossKZT   int64 `json:"gross_kzt"`
	OPVKZT     int64 `json:"opv_kzt"`
	IPNKZT     int64 `json:"ipn_kzt"`
	VOMSKZT    int64 `json:"voms_kzt"`
	SocTaxKZT  int64 `json:"soc_tax_kzt"`
	SocContKZT int64 `json:"soc_cont_kzt"`
	OSMSKZT    int64 `json:"osms_kzt"`
}
