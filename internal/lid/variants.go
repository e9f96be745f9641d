package lid

// LabelPrefix is the prefix the oracle attaches to every predicted label.
const LabelPrefix = "__label__"

// scriptCodes is the fixed list of ISO 15924 script codes the oracle may
// append to a predicted label, covering major and historic scripts.
var scriptCodes = []string{
	"Latn", "Cyrl", "Arab", "Deva", "Thai", "Hang", "Hira", "Kana",
	"Hans", "Hant", "Hani", "Jpan", "Ethi", "Grek", "Hebr", "Beng", "Gujr", "Guru",
	"Knda", "Mlym", "Orya", "Taml", "Telu", "Tibt", "Geor", "Armn",
	"Khmr", "Laoo", "Mymr", "Sinh", "Mong", "Copt", "Syrc", "Thaa",
	"Nkoo", "Vaii", "Bamu", "Lana", "Talu", "Bass", "Aghb", "Cakm",
	"Cham", "Dupl", "Egyp", "Elba", "Gran", "Hmng", "Khar", "Khoj",
	"Kits", "Lina", "Mahj", "Mani", "Mend", "Modi", "Mroo", "Mult",
	"Narb", "Nbat", "Nshu", "Orkh", "Osge", "Osma", "Palm", "Pauc",
	"Phag", "Phnx", "Plrd", "Rjng", "Rohg", "Saur", "Sgnw", "Shaw",
	"Shrd", "Sidd", "Sind", "Sogd", "Sogo", "Soyo", "Sund", "Sylo",
	"Tagb", "Takr", "Tale", "Tavt", "Tfng", "Tglg", "Tirh", "Ugar",
	"Wara", "Yiii", "Zanb", "Zinh", "Zmth", "Zsye", "Zsym", "Zxxx",
	"Zyyy", "Zzzz", "Cans",
}

// LabelVariants returns the accepted label set for a language code: the
// bare label plus every script-qualified variant. A prediction counts
// as correct when it falls inside this set.
func LabelVariants(code string) map[string]struct{} {
	variants := make(map[string]struct{}, len(scriptCodes)+1)
	variants[LabelPrefix+code] = struct{}{}
	for _, script := range scriptCodes {
		variants[LabelPrefix+code+"_"+script] = struct{}{}
	}
	return variants
}
