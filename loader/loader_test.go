package loader_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/roster-engine/loader"
	"github.com/warp/roster-engine/roster"
)

const sampleCSV = `employee_id,name,skills,2024/07/01,2024/07/02,2024/07/03
1,Tanaka,"cashier,refrigeration",09:00-14:00,休み,09:00-17:00
2,Suzuki,stocking,,14:00-20:00,
3,Sato,,09:00-14:00,,
`

func TestParse_WideFormat(t *testing.T) {
	rows, err := loader.Loader{}.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// Blank and day-off cells produce no row: 2 + 1 + 1
	require.Len(t, rows, 4)

	first := rows[0]
	assert.Equal(t, roster.EmployeeID("1"), first.EmployeeID)
	assert.Equal(t, "Tanaka", first.Name)
	assert.Equal(t, roster.SkillSet{roster.SkillCashier, roster.SkillRefrigeration}, first.Skills)
	assert.Equal(t, roster.NewDate(2024, time.July, 1), first.Date)
	assert.Equal(t, roster.NewWindow(9, 14), first.Window)

	// Tanaka's day-off cell on July 2nd is skipped; the next row is July 3rd
	assert.Equal(t, roster.NewDate(2024, time.July, 3), rows[1].Date)

	assert.Equal(t, roster.EmployeeID("2"), rows[2].EmployeeID)
	assert.Equal(t, roster.NewDate(2024, time.July, 2), rows[2].Date)
}

func TestParse_CustomDayOffToken(t *testing.T) {
	csv := "employee_id,name,skills,2024/07/01\n1,Tanaka,cashier,OFF\n"
	rows, err := loader.Loader{DayOffToken: "OFF"}.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{name: "bad time cell", csv: "employee_id,name,skills,2024/07/01\n1,Tanaka,cashier,9am-2pm\n"},
		{name: "reversed window", csv: "employee_id,name,skills,2024/07/01\n1,Tanaka,cashier,14:00-09:00\n"},
		{name: "bad date column", csv: "employee_id,name,skills,July 1st\n1,Tanaka,cashier,09:00-14:00\n"},
		{name: "no date columns", csv: "employee_id,name,skills\n1,Tanaka,cashier\n"},
		{name: "empty employee id", csv: "employee_id,name,skills,2024/07/01\n,Tanaka,cashier,09:00-14:00\n"},
		{name: "more cells than dates", csv: "employee_id,name,skills,2024/07/01\n1,Tanaka,cashier,09:00-14:00,09:00-14:00\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := loader.Loader{}.Parse(strings.NewReader(c.csv))
			require.Error(t, err)
		})
	}
}

func TestParse_ISOHeaderAccepted(t *testing.T) {
	csv := "employee_id,name,skills,2024-07-01\n1,Tanaka,cashier,09:00-14:00\n"
	rows, err := loader.Loader{}.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, roster.NewDate(2024, time.July, 1), rows[0].Date)
}

func TestMaterialize(t *testing.T) {
	rows, err := loader.Loader{}.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	employees, prefs := loader.Materialize(rows)

	// First-seen order, one entry per employee
	require.Len(t, employees, 3)
	assert.Equal(t, roster.EmployeeID("1"), employees[0].ID)
	assert.Equal(t, roster.EmployeeID("2"), employees[1].ID)
	assert.Equal(t, roster.EmployeeID("3"), employees[2].ID)

	// Rates default to always-accept
	for _, e := range employees {
		assert.Equal(t, 100, e.PreferenceRate)
	}

	windows := prefs.Windows("1", roster.NewDate(2024, time.July, 1))
	require.Len(t, windows, 1)
	assert.Equal(t, roster.NewWindow(9, 14), windows[0])
	assert.True(t, prefs.AnyOn(roster.NewDate(2024, time.July, 2)))
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, roster.SkillSet{roster.SkillCashier, roster.SkillStocking}, loader.ParseSkills("cashier, stocking"))
	assert.Empty(t, loader.ParseSkills(""))
	assert.Empty(t, loader.ParseSkills(" , "))
}
