package match

import (
	"strings"

	"github.com/loukach/infocar-eurotax-mapper/pkg/normalize"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

// Record is a target catalogue trim with everything candidate
// selection and scoring need precomputed at index build time.
type Record struct {
	Trim  *vehicles.Trim
	Specs vehicles.Specs
	Class vehicles.Class

	// Model name variants, precomputed for containment checks.
	modelRaw       string // lowercased provider model
	modelNorm      string // normalized model
	modelSpaceless string // normalized model without spaces
}

// Natcode returns the record's provider code.
func (r *Record) Natcode() string {
	return r.Trim.ProviderCode
}

// Index is an immutable snapshot of the target catalogue. Build it
// once per dataset load and share it freely; readers never see an
// index mid-construction because consumers swap whole Index pointers.
type Index struct {
	records []*Record

	byMake    map[string][]*Record
	byNatcode map[string]*Record

	// OEM indexes are kept for statistics and direct lookups; they
	// play no role in candidate selection.
	byOEM        map[string][]*Record
	byCleanedOEM map[string]map[string][]*Record
}

// NewIndex builds an index over target catalogue trims.
func NewIndex(trims []vehicles.Trim) *Index {
	idx := &Index{
		records:      make([]*Record, 0, len(trims)),
		byMake:       make(map[string][]*Record),
		byNatcode:    make(map[string]*Record, len(trims)),
		byOEM:        make(map[string][]*Record),
		byCleanedOEM: make(map[string]map[string][]*Record),
	}

	for i := range trims {
		trim := &trims[i]

		make_ := strings.ToUpper(strings.TrimSpace(trim.NormalizedMake))
		modelRaw := strings.ToLower(strings.TrimSpace(trim.NormalizedModel))
		modelNorm := normalize.Model(modelRaw)
		body := normalize.Body(trim.BodyType)

		rec := &Record{
			Trim:           trim,
			Specs:          vehicles.ExtractSpecs(trim),
			Class:          vehicles.Identify(make_, modelNorm, body),
			modelRaw:       modelRaw,
			modelNorm:      modelNorm,
			modelSpaceless: strings.ReplaceAll(modelNorm, " ", ""),
		}
		idx.records = append(idx.records, rec)

		if trim.ProviderCode != "" {
			idx.byNatcode[trim.ProviderCode] = rec
		}

		if make_ != "" {
			idx.byMake[make_] = append(idx.byMake[make_], rec)
		}

		oem := strings.ToUpper(strings.TrimSpace(trim.ManufacturerCode))
		if oem != "" {
			idx.byOEM[oem] = append(idx.byOEM[oem], rec)

			if cleaned, ok := normalize.CleanOEM(oem, make_); ok {
				byCleaned := idx.byCleanedOEM[make_]
				if byCleaned == nil {
					byCleaned = make(map[string][]*Record)
					idx.byCleanedOEM[make_] = byCleaned
				}
				cleaned = strings.ToUpper(cleaned)
				byCleaned[cleaned] = append(byCleaned[cleaned], rec)
			}
		}
	}

	return idx
}

// Size returns the number of indexed records.
func (idx *Index) Size() int {
	return len(idx.records)
}

// OEMCodeCount returns the number of distinct OEM codes in the index.
func (idx *Index) OEMCodeCount() int {
	return len(idx.byOEM)
}

// MakeCount returns the number of distinct makes in the index.
func (idx *Index) MakeCount() int {
	return len(idx.byMake)
}

// Lookup returns the record with the given provider code.
func (idx *Index) Lookup(natcode string) (*Record, bool) {
	rec, ok := idx.byNatcode[natcode]
	return rec, ok
}

// ByOEM returns all records carrying the given OEM code.
func (idx *Index) ByOEM(oem string) []*Record {
	return idx.byOEM[strings.ToUpper(strings.TrimSpace(oem))]
}

// Candidates selects the records worth scoring for a source vehicle:
// same make, same vehicle class, and model-name containment in either
// direction. Containment is checked over the normalized, the raw and
// the spaceless model forms, so "500 x" finds "500X". OEM codes play
// no part here.
func (idx *Index) Candidates(brand, model string, class vehicles.Class) []*Record {
	if brand == "" || model == "" {
		return nil
	}

	sameMake := idx.byMake[strings.ToUpper(strings.TrimSpace(brand))]
	if len(sameMake) == 0 {
		return nil
	}

	sourceRaw := strings.ToLower(strings.TrimSpace(model))
	sourceNorm := normalize.Model(sourceRaw)
	sourceSpaceless := strings.ReplaceAll(sourceNorm, " ", "")

	var candidates []*Record
	for _, rec := range sameMake {
		if rec.Class != class {
			continue
		}
		if rec.modelRaw == "" {
			continue
		}

		if strings.Contains(rec.modelNorm, sourceNorm) ||
			strings.Contains(sourceNorm, rec.modelNorm) ||
			strings.Contains(rec.modelRaw, sourceRaw) ||
			strings.Contains(sourceRaw, rec.modelRaw) ||
			strings.Contains(rec.modelSpaceless, sourceSpaceless) ||
			strings.Contains(sourceSpaceless, rec.modelSpaceless) {
			candidates = append(candidates, rec)
		}
	}

	return candidates
}
