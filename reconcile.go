package listex

// Sources collects the per-technique extractions feeding one
// reconciliation. Nil entries are treated as empty.
type Sources struct {
	Markup  *Extraction // structured markup (JSON-LD)
	DOM     *Extraction // heuristic DOM selectors and meta tags
	Price   *Extraction // price-only language-model call
	General *Extraction // general language-model call
}

// Reconcile merges the per-source extractions into one listing under a
// fixed per-field precedence order: the first non-empty source wins and
// later sources serve only as fallbacks. Reconcile is pure; it performs no
// network or parsing side effects and never invents values when all
// sources are empty.
//
// Numeric fields (price, beds, baths, sqft, year built, garage spaces)
// pass through ExtractNumeric so the result carries digits and decimal
// points only. Coordinates resolve per source as a complete pair: a
// latitude from one source is never mixed with a longitude from another,
// and the pair stays absent unless both halves parse.
func Reconcile(s Sources) *Listing {
	markup := orEmpty(s.Markup)
	dom := orEmpty(s.DOM)
	price := orEmpty(s.Price)
	general := orEmpty(s.General)

	l := &Listing{
		Price: firstNonEmpty(
			ExtractNumeric(markup.Price),
			ExtractNumeric(price.Price),
			ExtractNumeric(general.Price),
			ExtractNumeric(dom.Price),
		),
		Address:      firstNonEmpty(markup.Address, general.Address),
		Description:  firstNonEmpty(markup.Description, general.Description, dom.Description),
		ImageURL:     firstNonEmpty(markup.ImageURL, general.ImageURL, dom.ImageURL),
		Beds:         firstNonEmpty(ExtractNumeric(markup.Beds), ExtractNumeric(general.Beds)),
		Baths:        firstNonEmpty(ExtractNumeric(markup.Baths), ExtractNumeric(general.Baths)),
		Sqft:         firstNonEmpty(ExtractNumeric(markup.Sqft), ExtractNumeric(general.Sqft)),
		PropertyType: firstNonEmpty(markup.PropertyType, general.PropertyType),
		YearBuilt:    firstNonEmpty(ExtractNumeric(markup.YearBuilt), ExtractNumeric(general.YearBuilt)),
		GarageSpaces: ExtractNumeric(general.GarageSpaces),
		Levels:       general.Levels,
		LotSize:      general.LotSize,
	}

	// The title doubles as an address label when markup carries no name.
	l.Title = firstNonEmpty(markup.Title, l.Address, dom.Title)

	for _, e := range []*Extraction{markup, general} {
		lat, okLat := ParseCoordinate(e.Latitude)
		lng, okLng := ParseCoordinate(e.Longitude)
		if okLat && okLng {
			l.Latitude, l.Longitude = &lat, &lng
			break
		}
	}

	return l
}

func orEmpty(e *Extraction) *Extraction {
	if e == nil {
		return &Extraction{}
	}
	return e
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
