package catalog

// Per-locale UI label bundles. Hub pages and product pages draw from the same
// bundle; filter_width/filter_volume carry the unit in the label, the plain
// width/volume keys are the spec-table labels.
var labels = map[string]map[string]string{
	"be-nl": {
		"home": "Home", "products": "Producten", "subcategories": "Subcategorieën",
		"products_found": "producten gevonden", "filters": "Filters", "clear": "Wissen",
		"brand": "Merk", "loading_brands": "Merken laden...",
		"filter_volume": "Inhoud (liter)", "excavator_class": "Graafmachine Klasse",
		"filter_width": "Breedte (mm)", "attachment": "Ophanging",
		"apply_filters": "Filters Toepassen", "sort": "Sorteren:",
		"newest": "Nieuwste eerst", "oldest": "Oudste eerst",
		"name_az": "Naam A-Z", "name_za": "Naam Z-A", "loading": "Producten laden...",
		"prev": "Vorige", "next": "Volgende", "meta_suffix": "| Structon",
		"add_to_quote": "Toevoegen aan offerte", "specs": "Specificaties",
		"description": "Beschrijving", "stock": "Op voorraad", "out_of_stock": "Niet op voorraad",
		"width": "Breedte", "volume": "Inhoud", "weight": "Gewicht", "excavator": "Graafmachine",
	},
	"nl-nl": {
		"home": "Home", "products": "Producten", "subcategories": "Subcategorieën",
		"products_found": "producten gevonden", "filters": "Filters", "clear": "Wissen",
		"brand": "Merk", "loading_brands": "Merken laden...",
		"filter_volume": "Inhoud (liter)", "excavator_class": "Graafmachine Klasse",
		"filter_width": "Breedte (mm)", "attachment": "Ophanging",
		"apply_filters": "Filters Toepassen", "sort": "Sorteren:",
		"newest": "Nieuwste eerst", "oldest": "Oudste eerst",
		"name_az": "Naam A-Z", "name_za": "Naam Z-A", "loading": "Producten laden...",
		"prev": "Vorige", "next": "Volgende", "meta_suffix": "| Structon",
		"add_to_quote": "Toevoegen aan offerte", "specs": "Specificaties",
		"description": "Beschrijving", "stock": "Op voorraad", "out_of_stock": "Niet op voorraad",
		"width": "Breedte", "volume": "Inhoud", "weight": "Gewicht", "excavator": "Graafmachine",
	},
	"be-fr": {
		"home": "Accueil", "products": "Produits", "subcategories": "Sous-catégories",
		"products_found": "produits trouvés", "filters": "Filtres", "clear": "Effacer",
		"brand": "Marque", "loading_brands": "Chargement...",
		"filter_volume": "Contenu (litres)", "excavator_class": "Classe d'excavatrice",
		"filter_width": "Largeur (mm)", "attachment": "Fixation",
		"apply_filters": "Appliquer", "sort": "Trier:",
		"newest": "Plus récent", "oldest": "Plus ancien",
		"name_az": "Nom A-Z", "name_za": "Nom Z-A", "loading": "Chargement...",
		"prev": "Précédent", "next": "Suivant", "meta_suffix": "| Structon",
		"add_to_quote": "Ajouter au devis", "specs": "Spécifications",
		"description": "Description", "stock": "En stock", "out_of_stock": "Rupture de stock",
		"width": "Largeur", "volume": "Contenu", "weight": "Poids", "excavator": "Excavatrice",
	},
	"de-de": {
		"home": "Startseite", "products": "Produkte", "subcategories": "Unterkategorien",
		"products_found": "Produkte gefunden", "filters": "Filter", "clear": "Löschen",
		"brand": "Marke", "loading_brands": "Laden...",
		"filter_volume": "Inhalt (Liter)", "excavator_class": "Baggerklasse",
		"filter_width": "Breite (mm)", "attachment": "Aufhängung",
		"apply_filters": "Anwenden", "sort": "Sortieren:",
		"newest": "Neueste", "oldest": "Älteste",
		"name_az": "Name A-Z", "name_za": "Name Z-A", "loading": "Laden...",
		"prev": "Zurück", "next": "Weiter", "meta_suffix": "| Structon",
		"add_to_quote": "Zum Angebot hinzufügen", "specs": "Spezifikationen",
		"description": "Beschreibung", "stock": "Auf Lager", "out_of_stock": "Nicht auf Lager",
		"width": "Breite", "volume": "Inhalt", "weight": "Gewicht", "excavator": "Bagger",
	},
}
