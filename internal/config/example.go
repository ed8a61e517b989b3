package config

import (
	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/render"
)

const centered = "center aligned"

func title(s string) *string { return &s }

// ExampleFields returns the employee table used by the examples and the
// preview command when no configuration file is given.
func ExampleFields() []field.Definition {
	return []field.Definition{
		{Name: field.HandleName, TitleClass: centered, DataClass: centered},
		{Name: field.SequenceName, Title: title("#"), TitleClass: centered, DataClass: "right aligned"},
		{Name: field.CheckboxName, TitleClass: centered, DataClass: centered},
		{Name: "name", SortField: "name"},
		{Name: "email", SortField: "email"},
		{Name: "birthdate", SortField: "birthdate", TitleClass: centered, DataClass: centered, Callback: "formatDate|DD-MM-YYYY"},
		{Name: "nickname", SortField: "nickname", Callback: "allcap"},
		{Name: "gender", SortField: "gender", TitleClass: centered, DataClass: centered, Callback: "genderLabel"},
		{Name: "salary", SortField: "salary", TitleClass: centered, DataClass: "right aligned", Callback: "formatNumber"},
		{Name: "__slot:actions", Title: title("Slot Actions"), TitleClass: centered, DataClass: centered},
	}
}

// Example returns a complete configuration around ExampleFields.
func Example() *Config {
	return &Config{
		Name:       "employees",
		Fields:     ExampleFields(),
		Pagination: Pagination{PerPage: DefaultPerPage},
	}
}

// ExampleData returns a handful of rows matching ExampleFields.
func ExampleData() *Dataset {
	rows := []render.Row{
		{"id": 1, "name": "Alice Martin", "email": "alice@example.com", "birthdate": "1984-03-09", "nickname": "ally", "gender": "F", "salary": 1234567},
		{"id": 2, "name": "Bruno Diaz", "email": "bruno@example.com", "birthdate": "1979-11-21", "nickname": "bru", "gender": "M", "salary": 98250},
		{"id": 3, "name": "Chiara Rossi", "email": "chiara@example.com", "birthdate": "1991-06-30", "nickname": "kiki", "gender": "F", "salary": 143000.5},
		{"id": 4, "name": "Dmitri Volkov", "email": "dmitri@example.com", "birthdate": "1968-01-02", "nickname": "dima", "gender": "M", "salary": 76000},
		{"id": 5, "name": "Eun-ji Park", "email": "eunji@example.com", "birthdate": "1995-12-15", "nickname": "ej", "gender": "X", "salary": 88500},
		{"id": 6, "name": "Farah Haddad", "email": "farah@example.com", "birthdate": "1988-08-08", "nickname": "fay", "gender": "F", "salary": 112300},
		{"id": 7, "name": "Gustavo Lima", "email": "gustavo@example.com", "birthdate": "1975-05-25", "nickname": "guga", "gender": "M", "salary": 67450},
		{"id": 8, "name": "Hana Suzuki", "email": "hana@example.com", "birthdate": "2000-02-29", "nickname": "hana", "gender": "F", "salary": 59000},
		{"id": 9, "name": "Ivan Horvat", "email": "ivan@example.com", "birthdate": "1982-10-10", "nickname": "ivo", "gender": "M", "salary": 101000},
		{"id": 10, "name": "Jade Okafor", "email": "jade@example.com", "birthdate": "1993-04-01", "nickname": "jj", "gender": "F", "salary": 95500},
		{"id": 11, "name": "Kofi Mensah", "email": "kofi@example.com", "birthdate": "1986-07-19", "nickname": "kof", "gender": "M", "salary": 87000},
		{"id": 12, "name": "Lena Fischer", "email": "lena@example.com", "birthdate": "1990-09-03", "nickname": "lenchen", "gender": "F", "salary": 120750},
	}
	return &Dataset{Rows: rows, Total: len(rows)}
}
