package payroll

import (
	"strings"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// Ставки казахстанской зарплатной арифметики 2024 года.
// ОПВ 10%, ВОСМС 2%, ИПН 10% от базы за вычетом ОПВ и ВОСМС,
// соцотчисления 3.5%, соцналог 9.5% минус соцотчисления, ООСМС 3%.
const (
	opvPermille     = 100
	vomsPermille    = 20
	ipnPermille     = 100
	socContPermille = 35
	socTaxPermille  = 95
	osmsPermille    = 30
)

// Calculate считает все удержания и начисления от грязного оклада.
// Суммы в целых тенге, каждая ставка усекается вниз независимо.
func Calculate(gross int64) models.PayrollRow {
	row := models.PayrollRow{
		GrossKZT:   gross,
		OPVKZT:     floorRate(gross, opvPermille),
		VOMSKZT:    floorRate(gross, vomsPermille),
		SocContKZT: floorRate(gross, socContPermille),
		OSMSKZT:    floorRate(gross, osmsPermille),
	}
	row.IPNKZT = floorRate(gross-row.OPVKZT-row.VOMSKZT, ipnPermille)

	row.SocTaxKZT = floorRate(gross, socTaxPermille) - row.SocContKZT
	if row.SocTaxKZT < 0 {
		row.SocTaxKZT = 0
	}

	return row
}

// Net возвращает сумму на руки. Считается при чтении, не хранится:
// ручная правка любой ячейки сразу меняет итог.
func Net(row models.PayrollRow) int64 {
	return row.GrossKZT - (row.OPVKZT + row.IPNKZT + row.VOMSKZT)
}

// EmployerCost возвращает полную стоимость сотрудника для работодателя.
func EmployerCost(row models.PayrollRow) int64 {
	return row.GrossKZT + row.SocTaxKZT + row.SocContKZT + row.OSMSKZT
}

// CoerceAmount приводит произвольный ввод к целым тенге: отбрасывает все,
// кроме цифр ("1,500,000" и "500000 тг" читаются одинаково), пустой
// остаток дает ноль.
func CoerceAmount(raw string) int64 {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	var amount int64
	for _, r := range digits.String() {
		amount = amount*10 + int64(r-'0')
	}
	return amount
}

func floorRate(base, permille int64) int64 {
	if base <= 0 {
		return 0
	}
	return base * permille / 1000
}
