package i18n

var english = Catalog{
	"app": Catalog{
		"title":    "Personal Dictionary",
		"subtitle": "Your own list of words to learn",
	},
	"setup": Catalog{
		"title":      "Set up your dictionary",
		"totalWords": "How many words should we start with?",
		"language":   "Word language",
		"start":      "Create dictionary",
		"generating": "Generating {{count}} words...",
		"existing":   "A dictionary with {{count}} words already exists",
	},
	"words": Catalog{
		"count":    "{{count}} words",
		"empty":    "No words yet",
		"loadMore": "Load more words",
		"added":    "Added \"{{word}}\"",
		"updated":  "Updated \"{{word}}\"",
		"deleted":  "Word deleted",
		"moved":    "Moved \"{{word}}\" to position {{position}}",
		"cleared":  "All words removed",
		"appended": "Added {{count}} new words",
		"notFound": "Word not found",
	},
	"actions": Catalog{
		"add":    "Add",
		"edit":   "Edit",
		"save":   "Save",
		"cancel": "Cancel",
		"delete": "Delete",
		"clear":  "Clear all",
	},
	"search": Catalog{
		"placeholder": "Search words...",
		"noResults":   "No words match \"{{query}}\"",
	},
	"errors": Catalog{
		"emptyWord":       "Word cannot be empty",
		"invalidPosition": "Position must not be negative",
		"storage":         "Your changes could not be saved",
	},
	"languages": Catalog{
		"en": "English",
		"de": "German",
		"cs": "Czech",
	},
}

var german = Catalog{
	"app": Catalog{
		"title":    "Persönliches Wörterbuch",
		"subtitle": "Deine eigene Liste von Wörtern zum Lernen",
	},
	"setup": Catalog{
		"title":      "Wörterbuch einrichten",
		"totalWords": "Mit wie vielen Wörtern möchtest du beginnen?",
		"language":   "Sprache der Wörter",
		"start":      "Wörterbuch erstellen",
		"generating": "{{count}} Wörter werden erzeugt...",
		"existing":   "Es gibt bereits ein Wörterbuch mit {{count}} Wörtern",
	},
	"words": Catalog{
		"count":    "{{count}} Wörter",
		"empty":    "Noch keine Wörter",
		"loadMore": "Weitere Wörter laden",
		"added":    "\"{{word}}\" hinzugefügt",
		"updated":  "\"{{word}}\" aktualisiert",
		"deleted":  "Wort gelöscht",
		"moved":    "\"{{word}}\" an Position {{position}} verschoben",
		"cleared":  "Alle Wörter entfernt",
		"appended": "{{count}} neue Wörter hinzugefügt",
		"notFound": "Wort nicht gefunden",
	},
	"actions": Catalog{
		"add":    "Hinzufügen",
		"edit":   "Bearbeiten",
		"save":   "Speichern",
		"cancel": "Abbrechen",
		"delete": "Löschen",
		"clear":  "Alle löschen",
	},
	"search": Catalog{
		"placeholder": "Wörter suchen...",
		"noResults":   "Keine Wörter passen zu \"{{query}}\"",
	},
	"errors": Catalog{
		"emptyWord":       "Das Wort darf nicht leer sein",
		"invalidPosition": "Die Position darf nicht negativ sein",
	},
	"languages": Catalog{
		"en": "Englisch",
		"de": "Deutsch",
		"cs": "Tschechisch",
	},
}

var czech = Catalog{
	"app": Catalog{
		"title":    "Osobní slovník",
		"subtitle": "Vlastní seznam slov k učení",
	},
	"setup": Catalog{
		"title":      "Nastavení slovníku",
		"totalWords": "Kolika slovy chcete začít?",
		"language":   "Jazyk slov",
		"start":      "Vytvořit slovník",
		"generating": "Generuji {{count}} slov...",
		"existing":   "Slovník s {{count}} slovy již existuje",
	},
	"words": Catalog{
		"count":    "{{count}} slov",
		"empty":    "Zatím žádná slova",
		"loadMore": "Načíst další slova",
		"added":    "Přidáno \"{{word}}\"",
		"updated":  "Upraveno \"{{word}}\"",
		"deleted":  "Slovo smazáno",
		"moved":    "\"{{word}}\" přesunuto na pozici {{position}}",
		"cleared":  "Všechna slova odstraněna",
		"appended": "Přidáno {{count}} nových slov",
	},
	"actions": Catalog{
		"add":    "Přidat",
		"edit":   "Upravit",
		"save":   "Uložit",
		"cancel": "Zrušit",
		"delete": "Smazat",
		"clear":  "Smazat vše",
	},
	"search": Catalog{
		"placeholder": "Hledat slova...",
		"noResults":   "Žádná slova neodpovídají \"{{query}}\"",
	},
	"errors": Catalog{
		"emptyWord":       "Slovo nesmí být prázdné",
		"invalidPosition": "Pozice nesmí být záporná",
	},
	"languages": Catalog{
		"en": "Angličtina",
		"de": "Němčina",
		"cs": "Čeština",
	},
}
