package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/bds22000-prog/kyclean/internal/payroll"
	"github.com/bds22000-prog/kyclean/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	Report  *report.Service
	Payroll *payroll.Service
}

// NewExportHandler создает обработчик выгрузок отчета и ведомости.
func NewExportHandler(reportService *report.Service, payrollService *payroll.Service) *ExportHandler {
	return &ExportHandler{Report: reportService, Payroll: payrollService}
}

// ReportCSV выгружает месячный отчет в CSV.
func (h *ExportHandler) ReportCSV(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	values := h.Report.Values(month)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"section", "field_id", "label", "unit", "value"}); err != nil {
		return serverError(c)
	}
	for _, field := range report.Fields {
		record := []string{field.Section, field.ID, field.Label, field.Unit, values[field.ID]}
		if err := writer.Write(record); err != nil {
			return serverError(c)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "report-" + month + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ReportXLSX выгружает месячный отчет в XLSX.
func (h *ExportHandler) ReportXLSX(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	values := h.Report.Values(month)

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, "Report"); err != nil {
		return serverError(c)
	}
	sheet = "Report"

	header := []interface{}{"Раздел", "Показатель", "Ед.", "Значение"}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return serverError(c)
	}

	for i, field := range report.Fields {
		row := []interface{}{field.Section, field.Label, field.Unit, values[field.ID]}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return serverError(c)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return serverError(c)
	}

	filename := "report-" + month + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// PayrollXLSX выгружает зарплатную ведомость в XLSX.
func (h *ExportHandler) PayrollXLSX(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	rows, summary := h.Payroll.Rows(month)

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, "Payroll"); err != nil {
		return serverError(c)
	}
	sheet = "Payroll"

	header := []interface{}{
		"Таб. номер", "ФИО", "Отдел",
		"Оклад", "ОПВ", "ИПН", "ВОСМС",
		"Соцналог", "Соцотчисления", "ООСМС",
		"На руки", "Стоимость для работодателя",
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return serverError(c)
	}

	for i, row := range rows {
		values := []interface{}{
			row.EmpNo, row.Name, row.Department,
			row.Row.GrossKZT, row.Row.OPVKZT, row.Row.IPNKZT, row.Row.VOMSKZT,
			row.Row.SocTaxKZT, row.Row.SocContKZT, row.Row.OSMSKZT,
			row.NetKZT, row.EmployerCostKZT,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return serverError(c)
		}
	}

	totalCell := "A" + strconv.Itoa(len(rows)+2)
	totalRow := []interface{}{
		"", "Итого", "",
		summary.GrossKZT, summary.OPVKZT, summary.IPNKZT, summary.VOMSKZT,
		summary.SocTaxKZT, summary.SocContKZT, summary.OSMSKZT,
		summary.NetKZT, summary.EmployerCostKZT,
	}
	if err := file.SetSheetRow(sheet, totalCell, &totalRow); err != nil {
		return serverError(c)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return serverError(c)
	}

	filename := "payroll-" + month + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
