package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bds22000-prog/kyclean/internal/models"
)

// Field - одна ячейка месячного отчета.
type Field struct {
	ID      string
	Section string
	Label   string
	Unit    string
}

// Fields перечисляет все ячейки отчета в порядке печатной формы.
// Набор фиксированный: агрегатор заполняет карту целиком по этим ключам.
var Fields = []Field{
	{ID: "op_total_curr", Section: "operations", Label: "총 반입량 (Общий объем), 당월", Unit: "Ton"},
	{ID: "op_total_total", Section: "operations", Label: "총 반입량 (Общий объем), 누계", Unit: "Ton"},
	{ID: "op_city_curr", Section: "operations", Label: "크즐오르다 시 길거리 (Кызылорда саночистка), 당월", Unit: "Ton"},
	{ID: "op_city_total", Section: "operations", Label: "크즐오르다 시 길거리 (Кызылорда саночистка), 누계", Unit: "Ton"},
	{ID: "op_tas_curr", Section: "operations", Label: "타스보겟 길거리 (Тасбогет саночистка), 당월", Unit: "Ton"},
	{ID: "op_tas_total", Section: "operations", Label: "타스보겟 길거리 (Тасбогет саночистка), 누계", Unit: "Ton"},
	{ID: "op_taz_curr", Section: "operations", Label: "타잘리크 일반 업체들 (Тазалық коммерческие), 당월", Unit: "Ton"},
	{ID: "op_taz_total", Section: "operations", Label: "타잘리크 일반 업체들 (Тазалық коммерческие), 누계", Unit: "Ton"},
	{ID: "op_pet_curr", Section: "operations", Label: "기타 업체들 (Прочие компании), 당월", Unit: "Ton"},
	{ID: "op_pet_total", Section: "operations", Label: "기타 업체들 (Прочие компании), 누계", Unit: "Ton"},
	{ID: "fin_rev_total_curr", Section: "finance", Label: "한달 총 수입 (Общий доход за месяц)", Unit: "KZT"},
	{ID: "fin_rev_pet_curr", Section: "finance", Label: "PET 판매 수익 (Доход по продаже ПЭТ)", Unit: "KZT"},
	{ID: "fin_ar_curr", Section: "finance", Label: "매출채권 (Дебиторская задолженность)", Unit: "KZT"},
	{ID: "fin_exp_curr", Section: "finance", Label: "비용 (Расходы)", Unit: "KZT"},
	{ID: "fin_sal_curr", Section: "finance", Label: "급여 (Заработная плата)", Unit: "KZT"},
	{ID: "fin_tax_p_curr", Section: "finance", Label: "세금 및 공제, 개인 (Налоги физ. лиц)", Unit: "KZT"},
	{ID: "fin_tax_c_curr", Section: "finance", Label: "급여 세금, 법인 (Налоги юр. лиц)", Unit: "KZT"},
	{ID: "fin_ebit_curr", Section: "finance", Label: "당월 순이익 (Чистая прибыль, EBIT)", Unit: "KZT"},
	{ID: "hr_total_curr", Section: "hr", Label: "총 인원 (Общее кол-во), 당월", Unit: "명"},
	{ID: "hr_total_prev", Section: "hr", Label: "총 인원 (Общее кол-во), 전월", Unit: "명"},
	{ID: "hr_total_var", Section: "hr", Label: "총 인원 증감 (+/-)", Unit: "명"},
	{ID: "hr_sort_curr", Section: "hr", Label: "선별 인원 (Сортировщики)", Unit: "명"},
}

// KnownField проверяет принадлежность идентификатора фиксированному набору.
func KnownField(id string) bool {
	for _, field := range Fields {
		if field.ID == id {
			return true
		}
	}
	return false
}

// Sources - снимки исходных реестров на момент пересчета.
type Sources struct {
	Waste     []models.WasteEntry
	Recycling []models.RecyclingRecord
	Clients   []models.Client
	Employees []models.Employee
}

// Aggregator пересчитывает все выводимые ячейки месячного отчета из
// исходных записей. Пересчет идемпотентен: одинаковые входы дают байт в
// байт одинаковую карту.
type Aggregator struct {
	markers      Markers
	expenseRatio float64
}

// NewAggregator создает агрегатор с маркерами корзин и долей расходов.
// Доля расходов - сознательное упрощение (оценка вместо фактических
// затрат), поэтому она конфигурируется, а не зашита в расчет.
func NewAggregator(markers Markers, expenseRatio float64) *Aggregator {
	return &Aggregator{markers: markers, expenseRatio: expenseRatio}
}

// Recompute строит карту ячеек отчета за месяц.
func (a *Aggregator) Recompute(month string, src Sources) map[string]string {
	values := make(map[string]string, len(Fields))

	// 1. Эксплуатация полигона: корзины за месяц и накопительно с начала года.
	current := Classify(FilterMonth(src.Waste, month), a.markers)
	accumulated := Classify(FilterAccumulated(src.Waste, month), a.markers)

	values["op_total_curr"] = formatTons(current.Total)
	values["op_total_total"] = formatTons(accumulated.Total)
	values["op_city_curr"] = formatTons(current.City)
	values["op_city_total"] = formatTons(accumulated.City)
	values["op_tas_curr"] = formatTons(current.RouteB)
	values["op_tas_total"] = formatTons(accumulated.RouteB)
	values["op_taz_curr"] = formatTons(current.Commercial)
	values["op_taz_total"] = formatTons(accumulated.Commercial)
	values["op_pet_curr"] = formatTons(current.Other)
	values["op_pet_total"] = formatTons(accumulated.Other)

	// 2. Финансы: выручка по выставленным счетам, ПЭТ-отгрузка, дебиторка.
	revenue := BilledTotal(src.Clients, month)
	expense := int64(math.Round(float64(revenue) * a.expenseRatio))

	values["fin_rev_total_curr"] = humanize.Comma(revenue)
	values["fin_rev_pet_curr"] = humanize.Comma(PETOutboundRevenue(src.Recycling, month))
	values["fin_ar_curr"] = humanize.Comma(ReceivablesTotal(src.Clients, month))
	values["fin_exp_curr"] = strconv.FormatInt(expense, 10)
	values["fin_ebit_curr"] = humanize.Comma(revenue - expense)

	// Зарплатные строки финансового блока пока не выводятся из данных и
	// остаются ручными заглушками. Известное ограничение печатной формы.
	values["fin_sal_curr"] = "8,922,136"
	values["fin_tax_p_curr"] = "1,200,178"
	values["fin_tax_c_curr"] = "1,162,092"

	// 3. Персонал: численность считается по всему реестру, без среза месяца.
	active := ActiveHeadcount(src.Employees)
	values["hr_total_curr"] = strconv.Itoa(active)
	values["hr_total_prev"] = strconv.Itoa(active - 1)
	values["hr_total_var"] = "1"
	values["hr_sort_curr"] = "5"

	return values
}

// PlasticSortedCount возвращает число отсортированных единиц пластика за
// месяц. В минимальной печатной форме не выводится, но используется как
// промежуточный показатель (AI-сводка, расширения отчета).
func PlasticSortedCount(records []models.RecyclingRecord, month string) int64 {
	var sum int64
	for _, record := range records {
		if record.Type == models.RecyclingPlastic &&
			record.Action == models.ActionSorting &&
			strings.HasPrefix(record.Date, month+"-") {
			sum += record.Count
		}
	}
	return sum
}

// PETOutboundRevenue возвращает выручку от отгрузки пластика за месяц.
func PETOutboundRevenue(records []models.RecyclingRecord, month string) int64 {
	var sum int64
	for _, record := range records {
		if record.Type == models.RecyclingPlastic &&
			record.Action == models.ActionOutbound &&
			strings.HasPrefix(record.Date, month+"-") {
			sum += record.AmountKZT
		}
	}
	return sum
}

// BilledTotal суммирует выставленные клиентам счета за месяц.
func BilledTotal(clients []models.Client, month string) int64 {
	var sum int64
	for _, client := range clients {
		sum += client.MonthlyLedger[month].BilledKZT
	}
	return sum
}

// ReceivablesTotal суммирует дебиторку за месяц. Переплата дает
// отрицательный вклад и не обрезается.
func ReceivablesTotal(clients []models.Client, month string) int64 {
	var sum int64
	for _, client := range clients {
		entry, ok := client.MonthlyLedger[month]
		if !ok {
			continue
		}
		sum += entry.BilledKZT - entry.PaidKZT
	}
	return sum
}

// ActiveHeadcount возвращает число сотрудников без даты увольнения.
func ActiveHeadcount(employees []models.Employee) int {
	count := 0
	for _, employee := range employees {
		if employee.Active() {
			count++
		}
	}
	return count
}

func formatTons(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
