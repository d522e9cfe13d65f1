package domain

// RecordRepository defines the interface for reading raw transaction rows
type RecordRepository interface {
	// ReadRecords returns every data row of the source in source order
	ReadRecords() ([]RawRecord, error)

	// Source returns a human readable name of the underlying source
	Source() string
}

// Categorizer defines the interface for assigning a category to a description
type Categorizer interface {
	Categorize(description string) Category
}
