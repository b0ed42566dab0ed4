package model

// Row is a single line of the labeling sheet.
type Row struct {
	LineText      string
	Label         string // left empty for manual labeling
	ReceiptSource string
	Notes         string // left empty for manual labeling
}

// NewRow returns an unlabeled row for one OCR line.
func NewRow(lineText, receiptSource string) Row {
	return Row{LineText: lineText, ReceiptSource: receiptSource}
}
