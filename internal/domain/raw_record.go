package domain

// RawRecord represents one data row of a transactions file, exactly as read
type RawRecord struct {
	Row         int // 1-based data row number, header excluded
	Date        string
	Description string
	Amount      string
	Currency    string // Carried through but never used in computation
}
