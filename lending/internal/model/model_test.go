package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestLoan_DueDateFollowsKindPolicy(t *testing.T) {
	borrowed := date(t, "2024-02-20")
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{name: "book 28 days across leap day", kind: KindBook, want: "2024-03-19"},
		{name: "cd 7 days", kind: KindCD, want: "2024-02-27"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoan("l1", "alice", MediaItem{Kind: tt.kind, Identifier: "X"}, borrowed)
			require.Equal(t, tt.want, FormatDate(l.DueDate))
			require.Equal(t, borrowed.AddDate(0, 0, tt.kind.Policy().BorrowingPeriodDays), l.DueDate)
		})
	}
}

func TestLoan_OverdueBookFine(t *testing.T) {
	day0 := date(t, "2024-01-01")
	l := NewLoan("l1", "alice", MediaItem{Kind: KindBook, Identifier: "B1"}, day0)

	day28 := day0.AddDate(0, 0, 28)
	require.False(t, l.IsOverdue(day28))
	require.Zero(t, l.Fine(day28))

	day40 := day0.AddDate(0, 0, 40)
	require.True(t, l.IsOverdue(day40))
	require.Equal(t, 12, l.OverdueDays(day40))
	require.Equal(t, 120, l.Fine(day40))

	require.True(t, l.Close(day40))
	require.False(t, l.IsOverdue(day40))
	require.Zero(t, l.OverdueDays(day40))
	require.Zero(t, l.Fine(day40))

	require.False(t, l.Close(day40.AddDate(0, 0, 1)), "return date is immutable")
	require.Equal(t, day40, *l.ReturnDate)
}

func TestLoan_CDReturnedEarly(t *testing.T) {
	day0 := date(t, "2024-05-10")
	l := NewLoan("l2", "bob", MediaItem{Kind: KindCD, Identifier: "C1"}, day0)
	day3 := day0.AddDate(0, 0, 3)
	require.Zero(t, l.Fine(day3))
	require.Equal(t, 20*2, l.Fine(day0.AddDate(0, 0, 9)))
}

func TestLoan_FineIgnoresTimeOfDay(t *testing.T) {
	borrowed := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	l := NewLoan("l3", "bob", MediaItem{Kind: KindCD}, borrowed)
	require.Equal(t, 1, l.OverdueDays(time.Date(2024, 1, 9, 0, 1, 0, 0, time.UTC)))
}

func TestCopySequence(t *testing.T) {
	tests := map[string]int{
		"B2-3":            3,
		"978-3-16-148-12": 12,
		"B2-x":            0,
		"B2":              0,
		"B2-":             0,
	}
	for id, want := range tests {
		require.Equal(t, want, CopySequence(id), id)
	}
	require.Equal(t, "978-3-16-7", CopyID("978-3-16", 7))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" cd ")
	require.NoError(t, err)
	require.Equal(t, KindCD, k)
	require.Equal(t, 20, k.Policy().FinePerDay)

	_, err = ParseKind("vinyl")
	require.Error(t, err)
}

func TestNewLoanReport(t *testing.T) {
	day0 := date(t, "2024-01-01")
	loans := []Loan{
		NewLoan("a", "alice", MediaItem{Kind: KindBook}, day0),
		NewLoan("b", "alice", MediaItem{Kind: KindCD}, day0.AddDate(0, 0, 30)),
	}
	r := NewLoanReport("alice", loans, day0.AddDate(0, 0, 40))
	require.Len(t, r.Loans, 2)
	require.Equal(t, 120, r.Loans[0].Fine)
	require.Equal(t, 60, r.Loans[1].Fine)
	require.Equal(t, 180, r.TotalFine)
	require.Equal(t, "2024-02-10", r.Date)
}
