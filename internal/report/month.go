package report

import "time"

const monthLayout = "2006-01"

// ValidMonth проверяет ключ месяца вида YYYY-MM.
func ValidMonth(month string) bool {
	if len(month) != len(monthLayout) {
		return false
	}
	_, err := time.Parse(monthLayout, month)
	return err == nil
}

// CurrentMonth возвращает ключ текущего месяца.
func CurrentMonth() string {
	return time.Now().Format(monthLayout)
}
