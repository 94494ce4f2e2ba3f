package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLog_WriteXLSX(t *testing.T) {
	l := NewLog()
	l.Append(IntakeRecord{
		CallID:  "call-1",
		Track:   "personal_injury",
		Outcome: "ready_transfer",
		Collected: []Field{
			{Name: "name", Value: "John Smith"},
			{Name: "phone_confirmed", Value: "yes"},
		},
		StartedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		Duration:  95 * time.Second,
		Messages:  6,
	})
	l.Append(IntakeRecord{
		CallID:  "call-2",
		Track:   "no_fault",
		Outcome: "out_of_scope",
	})
	require.Equal(t, 2, l.Len())

	var buf bytes.Buffer
	require.NoError(t, l.WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Intake")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Call ID", rows[0][0])
	assert.Equal(t, "call-1", rows[1][0])
	assert.Equal(t, "personal_injury", rows[1][1])
	assert.Equal(t, "ready_transfer", rows[1][2])
	assert.Equal(t, "name: John Smith | phone_confirmed: yes", rows[1][6])
	assert.Equal(t, "call-2", rows[2][0])
}

func TestLog_EmptyWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLog().WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Intake")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
