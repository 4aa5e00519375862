package curvaparser

import (
	"path/filepath"
	"strings"
)

// DefaultSector is returned when no sector cue is found.
const DefaultSector = "N/D"

// SectorLabels are the store sectors a Curva ABC report can belong to.
var SectorLabels = []string{
	"FRIOS",
	"ACOUGUE",
	"AÇOUGUE",
	"PADARIA",
	"HORTIFRUTI",
	"BEBIDAS",
	"MERCEARIA",
	"LANCHONETE",
}

// filenameKeywords maps product-family words that show up in export
// filenames to the sector label. Ordered so the guess is deterministic.
var filenameKeywords = []struct {
	keyword string
	label   string
}{
	{"CARNE", "AÇOUGUE"},
	{"BOVINO", "AÇOUGUE"},
	{"FRANGO", "AÇOUGUE"},
	{"PAO", "PADARIA"},
	{"PÃO", "PADARIA"},
	{"CONFEITARIA", "PADARIA"},
	{"FRUTA", "HORTIFRUTI"},
	{"VERDURA", "HORTIFRUTI"},
	{"LEGUME", "HORTIFRUTI"},
	{"CERVEJA", "BEBIDAS"},
	{"REFRIGERANTE", "BEBIDAS"},
	{"QUEIJO", "FRIOS"},
	{"LATICINIO", "FRIOS"},
	{"LANCHE", "LANCHONETE"},
}

// GuessSector labels the report's sector from text and filename cues, in
// decreasing order of confidence: a sector label on a "Departamento" line,
// a label anywhere in the text, a label in the filename, and finally a
// filename keyword mapping. Returns DefaultSector when nothing matches.
func GuessSector(text, filename string) string {
	for _, line := range strings.Split(text, "\n") {
		up := strings.ToUpper(line)
		if !strings.Contains(up, "DEPARTAMENTO") {
			continue
		}
		for _, label := range SectorLabels {
			if strings.Contains(up, label) {
				return label
			}
		}
	}

	textUp := strings.ToUpper(text)
	for _, label := range SectorLabels {
		if strings.Contains(textUp, label) {
			return label
		}
	}

	base := strings.ToUpper(filepath.Base(filename))
	for _, label := range SectorLabels {
		if strings.Contains(base, label) {
			return label
		}
	}
	for _, kw := range filenameKeywords {
		if strings.Contains(base, kw.keyword) {
			return kw.label
		}
	}

	return DefaultSector
}
