package catalog

import "structon/generator/internal/domain"

// Hand-authored catalog taxonomy. Category order is the order pages and
// sitemap entries are emitted in.

var categoryOrder = []string{"graafbakken", "sloop-sorteergrijpers", "overige"}

var categories = map[string]domain.Category{
	"graafbakken": {
		Slug:  "graafbakken",
		Title: "Graafbakken",
		TitleTranslations: map[string]string{
			"be-nl": "Graafbakken", "nl-nl": "Graafbakken",
			"be-fr": "Godets de terrassement", "de-de": "Baggerschaufeln",
		},
		Description: "Professionele graafbakken voor alle grondwerkzaamheden. Van standaard graafwerk tot gespecialiseerde toepassingen zoals drainage, rioleringen en funderingen.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Professionele graafbakken voor alle grondwerkzaamheden. Van standaard graafwerk tot gespecialiseerde toepassingen zoals drainage, rioleringen en funderingen.",
			"nl-nl": "Professionele graafbakken voor alle grondwerkzaamheden. Van standaard graafwerk tot gespecialiseerde toepassingen zoals drainage, rioleringen en funderingen.",
			"be-fr": "Godets de terrassement professionnels pour tous les travaux de terrassement.",
			"de-de": "Professionelle Baggerschaufeln für alle Erdarbeiten.",
		},
		Subcategories: []string{"slotenbakken", "dieplepelbakken", "sleuvenbakken", "kantelbakken", "rioolbakken", "trapezium-bakken"},
	},
	"sloop-sorteergrijpers": {
		Slug:  "sloop-sorteergrijpers",
		Title: "Sloop- & Sorteergrijpers",
		TitleTranslations: map[string]string{
			"be-nl": "Sloop- & Sorteergrijpers", "nl-nl": "Sloop- & Sorteergrijpers",
			"be-fr": "Pinces de démolition et de tri", "de-de": "Abbruch- & Sortiergreifer",
		},
		Description: "Robuuste sloop- en sorteergrijpers voor afbraak, recycling en materiaalverwerking.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Robuuste sloop- en sorteergrijpers voor afbraak, recycling en materiaalverwerking.",
			"nl-nl": "Robuuste sloop- en sorteergrijpers voor afbraak, recycling en materiaalverwerking.",
			"be-fr": "Pinces de démolition et de tri robustes pour la démolition et le recyclage.",
			"de-de": "Robuste Abbruch- und Sortiergreifer für Abriss und Recycling.",
		},
		Subcategories: []string{"sorteergrijpers", "sloopgrijpers", "puingrijpers"},
	},
	"overige": {
		Slug:  "overige",
		Title: "Overige Aanbouwdelen",
		TitleTranslations: map[string]string{
			"be-nl": "Overige Aanbouwdelen", "nl-nl": "Overige Aanbouwdelen",
			"be-fr": "Autres accessoires", "de-de": "Sonstige Anbaugeräte",
		},
		Description: "Gespecialiseerde aanbouwdelen voor specifieke toepassingen.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Gespecialiseerde aanbouwdelen voor specifieke toepassingen.",
			"nl-nl": "Gespecialiseerde aanbouwdelen voor specifieke toepassingen.",
			"be-fr": "Accessoires spécialisés pour des applications spécifiques.",
			"de-de": "Spezialisierte Anbaugeräte für spezifische Anwendungen.",
		},
		Subcategories: []string{"ripper-tanden", "hydraulische-hamers", "egaliseerbalken", "verdichtingsplaten"},
	},
}

var subcategories = map[string]domain.Subcategory{
	"slotenbakken": {
		Slug: "slotenbakken", ParentCategory: "graafbakken",
		Title:             "Slotenbakken",
		TitleTranslations: map[string]string{"be-nl": "Slotenbakken", "nl-nl": "Slotenbakken", "be-fr": "Godets à tranchées", "de-de": "Grabenschaufeln"},
		Description:       "Slotenbakken zijn gespecialiseerde smalle graafbakken voor het graven van sleuven en leidingsloten.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Slotenbakken zijn gespecialiseerde smalle graafbakken voor het graven van sleuven en leidingsloten.",
			"nl-nl": "Slotenbakken zijn gespecialiseerde smalle graafbakken voor het graven van sleuven en leidingsloten.",
			"be-fr": "Les godets à tranchées sont des godets étroits spécialisés.",
			"de-de": "Grabenschaufeln sind spezialisierte schmale Schaufeln.",
		},
	},
	"dieplepelbakken": {
		Slug: "dieplepelbakken", ParentCategory: "graafbakken",
		Title:             "Dieplepelbakken",
		TitleTranslations: map[string]string{"be-nl": "Dieplepelbakken", "nl-nl": "Dieplepelbakken", "be-fr": "Godets profonds", "de-de": "Tiefschaufeln"},
		Description:       "Dieplepelbakken zijn extra diepe graafbakken voor vijvers, watergangen en diepe funderingen.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Dieplepelbakken zijn extra diepe graafbakken voor vijvers, watergangen en diepe funderingen.",
			"nl-nl": "Dieplepelbakken zijn extra diepe graafbakken voor vijvers, watergangen en diepe funderingen.",
			"be-fr": "Les godets profonds sont des godets extra-profonds.",
			"de-de": "Tiefschaufeln sind extra tiefe Schaufeln.",
		},
	},
	"sleuvenbakken": {
		Slug: "sleuvenbakken", ParentCategory: "graafbakken",
		Title:             "Sleuvenbakken",
		TitleTranslations: map[string]string{"be-nl": "Sleuvenbakken", "nl-nl": "Sleuvenbakken", "be-fr": "Godets à fentes", "de-de": "Schlitzschaufeln"},
		Description:       "Sleuvenbakken combineren smalle breedte met extra diepte voor diepe, smalle sleuven.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Sleuvenbakken combineren smalle breedte met extra diepte voor diepe, smalle sleuven.",
			"nl-nl": "Sleuvenbakken combineren smalle breedte met extra diepte voor diepe, smalle sleuven.",
			"be-fr": "Les godets à fentes combinent une largeur étroite avec une profondeur supplémentaire.",
			"de-de": "Schlitzschaufeln kombinieren schmale Breite mit zusätzlicher Tiefe.",
		},
	},
	"kantelbakken": {
		Slug: "kantelbakken", ParentCategory: "graafbakken",
		Title:             "Kantelbakken",
		TitleTranslations: map[string]string{"be-nl": "Kantelbakken", "nl-nl": "Kantelbakken", "be-fr": "Godets basculants", "de-de": "Schwenkschaufeln"},
		Description:       "Kantelbakken met hydraulisch kantelbare bak voor taluds en moeilijk bereikbare hoeken.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Kantelbakken met hydraulisch kantelbare bak voor taluds en moeilijk bereikbare hoeken.",
			"nl-nl": "Kantelbakken met hydraulisch kantelbare bak voor taluds en moeilijk bereikbare hoeken.",
			"be-fr": "Les godets basculants disposent d'un godet hydrauliquement inclinable.",
			"de-de": "Schwenkschaufeln verfügen über eine hydraulisch schwenkbare Schaufel.",
		},
	},
	"rioolbakken": {
		Slug: "rioolbakken", ParentCategory: "graafbakken",
		Title:             "Rioolbakken",
		TitleTranslations: map[string]string{"be-nl": "Rioolbakken", "nl-nl": "Rioolbakken", "be-fr": "Godets à égouts", "de-de": "Kanalschaufeln"},
		Description:       "Rioolbakken met afgeronde bodem voor het graven van rioolsleuven.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Rioolbakken met afgeronde bodem voor het graven van rioolsleuven.",
			"nl-nl": "Rioolbakken met afgeronde bodem voor het graven van rioolsleuven.",
			"be-fr": "Les godets à égouts sont des godets spécialement formés.",
			"de-de": "Kanalschaufeln sind speziell geformte Schaufeln.",
		},
	},
	"trapezium-bakken": {
		Slug: "trapezium-bakken", ParentCategory: "graafbakken",
		Title:             "Trapezium Bakken",
		TitleTranslations: map[string]string{"be-nl": "Trapezium Bakken", "nl-nl": "Trapezium Bakken", "be-fr": "Godets trapézoïdaux", "de-de": "Trapezschaufeln"},
		Description:       "Trapezium bakken met trapeziumvormig profiel voor stabiele sleuven met schuine wanden.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Trapezium bakken met trapeziumvormig profiel voor stabiele sleuven met schuine wanden.",
			"nl-nl": "Trapezium bakken met trapeziumvormig profiel voor stabiele sleuven met schuine wanden.",
			"be-fr": "Les godets trapézoïdaux ont un profil trapézoïdal.",
			"de-de": "Trapezschaufeln haben ein trapezförmiges Profil.",
		},
	},
	"sorteergrijpers": {
		Slug: "sorteergrijpers", ParentCategory: "sloop-sorteergrijpers",
		Title:             "Sorteergrijpers",
		TitleTranslations: map[string]string{"be-nl": "Sorteergrijpers", "nl-nl": "Sorteergrijpers", "be-fr": "Pinces de tri", "de-de": "Sortiergreifer"},
		Description:       "Sorteergrijpers zijn hydraulische grijpers voor het sorteren van bouw- en sloopafval.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Sorteergrijpers zijn hydraulische grijpers voor het sorteren van bouw- en sloopafval.",
			"nl-nl": "Sorteergrijpers zijn hydraulische grijpers voor het sorteren van bouw- en sloopafval.",
			"be-fr": "Les pinces de tri sont des pinces hydrauliques.",
			"de-de": "Sortiergreifer sind hydraulische Greifer.",
		},
	},
	"sloopgrijpers": {
		Slug: "sloopgrijpers", ParentCategory: "sloop-sorteergrijpers",
		Title:             "Sloopgrijpers",
		TitleTranslations: map[string]string{"be-nl": "Sloopgrijpers", "nl-nl": "Sloopgrijpers", "be-fr": "Pinces de démolition", "de-de": "Abbruchgreifer"},
		Description:       "Sloopgrijpers zijn extra zware grijpers voor afbraakwerk.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Sloopgrijpers zijn extra zware grijpers voor afbraakwerk.",
			"nl-nl": "Sloopgrijpers zijn extra zware grijpers voor afbraakwerk.",
			"be-fr": "Les pinces de démolition sont des pinces extra-lourdes.",
			"de-de": "Abbruchgreifer sind extra schwere Greifer.",
		},
	},
	"puingrijpers": {
		Slug: "puingrijpers", ParentCategory: "sloop-sorteergrijpers",
		Title:             "Puingrijpers",
		TitleTranslations: map[string]string{"be-nl": "Puingrijpers", "nl-nl": "Puingrijpers", "be-fr": "Pinces à gravats", "de-de": "Schuttgreifer"},
		Description:       "Puingrijpers zijn veelzijdige grijpers voor het laden en sorteren van puin.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Puingrijpers zijn veelzijdige grijpers voor het laden en sorteren van puin.",
			"nl-nl": "Puingrijpers zijn veelzijdige grijpers voor het laden en sorteren van puin.",
			"be-fr": "Les pinces à gravats sont des pinces polyvalentes.",
			"de-de": "Schuttgreifer sind vielseitige Greifer.",
		},
	},
	"ripper-tanden": {
		Slug: "ripper-tanden", ParentCategory: "overige",
		Title:             "Ripper Tanden",
		TitleTranslations: map[string]string{"be-nl": "Ripper Tanden", "nl-nl": "Ripper Tanden", "be-fr": "Dents de ripper", "de-de": "Reißzähne"},
		Description:       "Ripper tanden zijn krachtige breektanden voor verhardingen en rotsachtige bodems.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Ripper tanden zijn krachtige breektanden voor verhardingen en rotsachtige bodems.",
			"nl-nl": "Ripper tanden zijn krachtige breektanden voor verhardingen en rotsachtige bodems.",
			"be-fr": "Les dents de ripper sont des dents de rupture puissantes.",
			"de-de": "Reißzähne sind kraftvolle Brechzähne.",
		},
	},
	"hydraulische-hamers": {
		Slug: "hydraulische-hamers", ParentCategory: "overige",
		Title:             "Hydraulische Hamers",
		TitleTranslations: map[string]string{"be-nl": "Hydraulische Hamers", "nl-nl": "Hydraulische Hamers", "be-fr": "Marteaux hydrauliques", "de-de": "Hydraulikhämmer"},
		Description:       "Hydraulische hamers zijn slagkrachtige breekhamers voor beton en asfalt.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Hydraulische hamers zijn slagkrachtige breekhamers voor beton en asfalt.",
			"nl-nl": "Hydraulische hamers zijn slagkrachtige breekhamers voor beton en asfalt.",
			"be-fr": "Les marteaux hydrauliques sont des brise-roches puissants.",
			"de-de": "Hydraulikhämmer sind schlagkräftige Abbruchhämmer.",
		},
	},
	"egaliseerbalken": {
		Slug: "egaliseerbalken", ParentCategory: "overige",
		Title:             "Egaliseerbalken",
		TitleTranslations: map[string]string{"be-nl": "Egaliseerbalken", "nl-nl": "Egaliseerbalken", "be-fr": "Poutres de nivellement", "de-de": "Planierbalken"},
		Description:       "Egaliseerbalken zijn precisie-afwerkingsgereedschap voor het egaliseren van terreinen.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Egaliseerbalken zijn precisie-afwerkingsgereedschap voor het egaliseren van terreinen.",
			"nl-nl": "Egaliseerbalken zijn precisie-afwerkingsgereedschap voor het egaliseren van terreinen.",
			"be-fr": "Les poutres de nivellement sont des outils de finition de précision.",
			"de-de": "Planierbalken sind Präzisions-Endbearbeitungswerkzeuge.",
		},
	},
	"verdichtingsplaten": {
		Slug: "verdichtingsplaten", ParentCategory: "overige",
		Title:             "Verdichtingsplaten",
		TitleTranslations: map[string]string{"be-nl": "Verdichtingsplaten", "nl-nl": "Verdichtingsplaten", "be-fr": "Plaques de compactage", "de-de": "Verdichtungsplatten"},
		Description:       "Hydraulische verdichtingsplaten voor het verdichten van grond, zand en grind.",
		DescriptionTranslations: map[string]string{
			"be-nl": "Hydraulische verdichtingsplaten voor het verdichten van grond, zand en grind.",
			"nl-nl": "Hydraulische verdichtingsplaten voor het verdichten van grond, zand en grind.",
			"be-fr": "Plaques de compactage hydrauliques pour le compactage du sol.",
			"de-de": "Hydraulische Verdichtungsplatten zum Verdichten von Erde.",
		},
	},
}
