package books

// webEntries is the World English Bible book table in sidebar order.
var webEntries = []Entry{
	{"GEN", "Genesis", "Genesis", 50, GroupOT},
	{"EXO", "Exodus", "Exodus", 40, GroupOT},
	{"LEV", "Leviticus", "Leviticus", 27, GroupOT},
	{"NUM", "Numbers", "Numbers", 36, GroupOT},
	{"DEU", "Deuteronomy", "Deuteronomy", 34, GroupOT},
	{"JOS", "Joshua", "Joshua", 24, GroupOT},
	{"JDG", "Judges", "Judges", 21, GroupOT},
	{"RUT", "Ruth", "Ruth", 4, GroupOT},
	{"1SA", "1_Samuel", "1 Samuel", 31, GroupOT},
	{"2SA", "2_Samuel", "2 Samuel", 24, GroupOT},
	{"1KI", "1_Kings", "1 Kings", 22, GroupOT},
	{"2KI", "2_Kings", "2 Kings", 25, GroupOT},
	{"1CH", "1_Chronicles", "1 Chronicles", 29, GroupOT},
	{"2CH", "2_Chronicles", "2 Chronicles", 36, GroupOT},
	{"EZR", "Ezra", "Ezra", 10, GroupOT},
	{"NEH", "Nehemiah", "Nehemiah", 13, GroupOT},
	{"EST", "Esther", "Esther", 10, GroupOT},
	{"JOB", "Job", "Job", 42, GroupOT},
	{"PSA", "Psalms", "Psalms", 150, GroupOT},
	{"PRO", "Proverbs", "Proverbs", 31, GroupOT},
	{"ECC", "Ecclesiastes", "Ecclesiastes", 12, GroupOT},
	{"SNG", "Song_of_Solomon", "Song of Solomon", 8, GroupOT},
	{"ISA", "Isaiah", "Isaiah", 66, GroupOT},
	{"JER", "Jeremiah", "Jeremiah", 52, GroupOT},
	{"LAM", "Lamentations", "Lamentations", 5, GroupOT},
	{"EZK", "Ezekiel", "Ezekiel", 48, GroupOT},
	{"DAN", "Daniel", "Daniel", 12, GroupOT},
	{"HOS", "Hosea", "Hosea", 14, GroupOT},
	{"JOL", "Joel", "Joel", 3, GroupOT},
	{"AMO", "Amos", "Amos", 9, GroupOT},
	{"OBA", "Obadiah", "Obadiah", 1, GroupOT},
	{"JON", "Jonah", "Jonah", 4, GroupOT},
	{"MIC", "Micah", "Micah", 7, GroupOT},
	{"NAM", "Nahum", "Nahum", 3, GroupOT},
	{"HAB", "Habakkuk", "Habakkuk", 3, GroupOT},
	{"ZEP", "Zephaniah", "Zephaniah", 3, GroupOT},
	{"HAG", "Haggai", "Haggai", 2, GroupOT},
	{"ZEC", "Zechariah", "Zechariah", 14, GroupOT},
	{"MAL", "Malachi", "Malachi", 4, GroupOT},

	{"TOB", "Tobit", "Tobit", 14, GroupDC},
	{"JDT", "Judith", "Judith", 16, GroupDC},
	{"ESG", "Esther_Greek", "Esther (Greek)", 10, GroupDC},
	{"WIS", "Wisdom_of_Solomon", "Wisdom of Solomon", 19, GroupDC},
	{"SIR", "Sirach", "Sirach", 51, GroupDC},
	{"BAR", "Baruch", "Baruch", 6, GroupDC},
	{"DAG", "Daniel_Greek", "Daniel (Greek)", 14, GroupDC},
	{"1MA", "1_Maccabees", "1 Maccabees", 16, GroupDC},
	{"2MA", "2_Maccabees", "2 Maccabees", 15, GroupDC},
	{"1ES", "1_Esdras", "1 Esdras", 9, GroupDC},
	{"MAN", "Prayer_of_Manasseh", "Prayer of Manasseh", 1, GroupDC},
	{"PS", "Psalm_151", "Psalm 151", 1, GroupDC},
	{"3MA", "3_Maccabees", "3 Maccabees", 7, GroupDC},
	{"2ES", "2_Esdras", "2 Esdras", 16, GroupDC},
	{"4MA", "4_Maccabees", "4 Maccabees", 18, GroupDC},

	{"MAT", "Matthew", "Matthew", 28, GroupNT},
	{"MRK", "Mark", "Mark", 16, GroupNT},
	{"LUK", "Luke", "Luke", 24, GroupNT},
	{"JHN", "John", "John", 21, GroupNT},
	{"ACT", "Acts", "Acts", 28, GroupNT},
	{"ROM", "Romans", "Romans", 16, GroupNT},
	{"1CO", "1_Corinthians", "1 Corinthians", 16, GroupNT},
	{"2CO", "2_Corinthians", "2 Corinthians", 13, GroupNT},
	{"GAL", "Galatians", "Galatians", 6, GroupNT},
	{"EPH", "Ephesians", "Ephesians", 6, GroupNT},
	{"PHP", "Philippians", "Philippians", 4, GroupNT},
	{"COL", "Colossians", "Colossians", 4, GroupNT},
	{"1TH", "1_Thessalonians", "1 Thessalonians", 5, GroupNT},
	{"2TH", "2_Thessalonians", "2 Thessalonians", 3, GroupNT},
	{"1TI", "1_Timothy", "1 Timothy", 6, GroupNT},
	{"2TI", "2_Timothy", "2 Timothy", 4, GroupNT},
	{"TIT", "Titus", "Titus", 3, GroupNT},
	{"PHM", "Philemon", "Philemon", 1, GroupNT},
	{"HEB", "Hebrews", "Hebrews", 13, GroupNT},
	{"JAS", "James", "James", 5, GroupNT},
	{"1PE", "1_Peter", "1 Peter", 5, GroupNT},
	{"2PE", "2_Peter", "2 Peter", 3, GroupNT},
	{"1JN", "1_John", "1 John", 5, GroupNT},
	{"2JN", "2_John", "2 John", 1, GroupNT},
	{"3JN", "3_John", "3 John", 1, GroupNT},
	{"JUD", "Jude", "Jude", 1, GroupNT},
	{"REV", "Revelation", "Revelation", 22, GroupNT},

	{"FRT", "Front_Matter", "Front Matter", 0, GroupSupplement},
	{"GLO", "Glossary", "Glossary", 0, GroupSupplement},
}

// Default returns the World English Bible registry.
func Default() *Registry {
	return MustNew(webEntries)
}
