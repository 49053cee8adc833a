package reconcile

// digitFraction is the share of all-digit samples above which a batch is
// treated as barcodes rather than SKUs.
const digitFraction = 0.8

// DetectIdentifierType inspects a sample of raw reference values and decides
// whether the batch should be looked up as barcodes or SKUs.
//
// Sentinel and empty values are dropped first; with no valid samples left the
// answer is SKU. Otherwise the batch is classified as barcode when more than
// 80% of the samples are composed entirely of digits.
//
// This is a heuristic: a predominantly numeric SKU scheme will be
// misclassified. Callers must let an explicit barcode column in the source
// file override this result.
func DetectIdentifierType(samples []string) IdentifierType {
	valid := 0
	numeric := 0

	for _, s := range samples {
		if s == "" || s == EmptyReference {
			continue
		}
		valid++
		if allDigits(s) {
			numeric++
		}
	}

	if valid == 0 {
		return IdentifierSKU
	}
	if float64(numeric)/float64(valid) > digitFraction {
		return IdentifierBarcode
	}
	return IdentifierSKU
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
