package wordsource

var englishWords = []string{
	"apple", "banana", "cherry", "dog", "elephant", "forest", "garden", "house",
	"island", "jungle", "kitten", "lion", "mountain", "ocean", "penguin", "queen",
	"river", "sun", "tree", "umbrella", "violet", "water", "xylophone", "yellow",
	"zebra", "adventure", "beautiful", "crystal", "diamond", "energy", "fantasy",
	"guitar", "harmony", "imagination", "journey", "knowledge", "laughter", "magic",
	"nature", "ocean", "peace", "rainbow", "sunshine", "treasure", "universe",
	"victory", "wisdom", "youth",
}

var germanWords = []string{
	"Apfel", "Banane", "Kirsche", "Hund", "Elefant", "Wald", "Garten", "Haus",
	"Insel", "Dschungel", "Kätzchen", "Löwe", "Berg", "Ozean", "Pinguin", "Königin",
	"Fluss", "Sonne", "Baum", "Regenschirm", "Veilchen", "Wasser", "Xylophon", "Gelb",
	"Zebra", "Abenteuer", "Schön", "Kristall", "Diamant", "Energie", "Fantasy",
	"Gitarre", "Harmonie", "Phantasie", "Reise", "Wissen", "Lachen", "Magie",
	"Natur", "Ozean", "Frieden", "Regenbogen", "Sonnenschein", "Schatz", "Universum",
	"Sieg", "Weisheit", "Jugend",
}

var czechWords = []string{
	"jablko", "banán", "třešeň", "pes", "slon", "les", "zahrada", "dům",
	"ostrov", "džungle", "kotě", "lev", "hora", "oceán", "tučňák", "královna",
	"řeka", "slunce", "strom", "deštník", "fialka", "voda", "xylofon", "žlutý",
	"zebra", "dobrodružství", "krásný", "krystal", "diamant", "energie", "fantazie",
	"kytara", "harmonie", "představivost", "cesta", "vědění", "smích", "magie",
	"příroda", "oceán", "mír", "duha", "sluneční světlo", "poklad", "vesmír",
	"vítězství", "moudrost", "mládí",
}
