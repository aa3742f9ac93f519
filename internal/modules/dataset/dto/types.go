package dto

type ConvertInput struct {
	RawDir string
	OutDir string
}

type TableResult struct {
	Table       string
	Source      string
	Destination string
	Records     int
	Err         error
}

type ConvertOutput struct {
	Results []TableResult
}

// Failed counts the tables that did not produce output.
func (o ConvertOutput) Failed() int {
	n := 0
	for _, r := range o.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
