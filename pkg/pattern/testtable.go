package pattern

// TestTable lists per-file results of one check.
type TestTable struct {
	Label   string
	Source  string // check that produced the table
	Results []TestTableItem
}

// TestTableItem is a single file result.
type TestTableItem struct {
	Name    string // file path
	Status  string // "pass", "warn", "fail"
	Details string // one finding per line
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
