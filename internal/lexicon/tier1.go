package lexicon

// tier1Words holds the most frequent few hundred English lemmas: function
// words, pronouns, auxiliaries, and the highest-frequency verbs, nouns, and
// adjectives. See the package doc comment for provenance.
var tier1Words = []string{
	"a", "about", "above", "across", "act", "add", "after", "again",
	"against", "age", "ago", "air", "all", "almost", "alone", "along",
	"already", "also", "although", "always", "am", "among", "an", "and",
	"another", "answer", "any", "anyone", "anything", "appear", "are",
	"area", "arm", "around", "arrive", "art", "as", "ask", "at", "away",
	"baby", "back", "bad", "bag", "ball", "bank", "base", "be", "bear",
	"beat", "beautiful", "because", "become", "bed", "before", "begin",
	"behind", "believe", "below", "best", "better", "between", "big",
	"bird", "bit", "black", "blood", "blue", "board", "boat", "body",
	"book", "born", "both", "box", "boy", "break", "bring", "brother",
	"build", "business", "but", "buy", "by", "call", "came", "can",
	"car", "card", "care", "carry", "case", "catch", "cause", "cell",
	"center", "certain", "chair", "chance", "change", "character",
	"charge", "check", "child", "choose", "city", "class", "clear",
	"close", "cold", "college", "color", "come", "common", "community",
	"company", "compare", "complete", "computer", "consider",
	"contain", "continue", "control", "cost", "could", "country",
	"couple", "course", "cover", "create", "cut", "dark", "data",
	"day", "dead", "deal", "decide", "deep", "describe", "design",
	"detail", "develop", "did", "die", "different", "difficult",
	"do", "does", "door", "down", "draw", "dream", "drink", "drive",
	"drop", "during", "each", "early", "east", "easy", "eat",
	"economic", "edge", "effect", "eight", "either", "else", "end",
	"enough", "enter", "entire", "especially", "even", "evening",
	"event", "ever", "every", "everyone", "everything", "example",
	"exist", "expect", "experience", "explain", "eye", "face", "fact",
	"fall", "family", "far", "fast", "father", "fear", "feel", "few",
	"field", "fight", "figure", "fill", "film", "final", "find",
	"fine", "finger", "finish", "fire", "first", "fish", "five",
	"floor", "fly", "focus", "follow", "food", "foot", "for",
	"force", "forget", "form", "forward", "found", "four", "free",
	"friend", "from", "front", "full", "fund", "future", "game",
	"garden", "gas", "general", "get", "girl", "give", "glass", "go",
	"goal", "good", "govern", "great", "green", "ground", "group",
	"grow", "guess", "gun", "guy", "hair", "half", "hand", "hang",
	"happen", "happy", "hard", "has", "have", "he", "head", "health",
	"hear", "heart", "heat", "heavy", "help", "her", "here", "herself",
	"high", "him", "himself", "his", "history", "hit", "hold", "home",
	"hope", "horse", "hospital", "hot", "hotel", "hour", "house",
	"how", "however", "huge", "human", "hundred", "husband", "i",
	"idea", "if", "image", "imagine", "important", "improve", "in",
	"include", "indeed", "indicate", "inside", "instead", "interest",
	"into", "involve", "issue", "it", "item", "its", "itself", "job",
	"join", "just", "keep", "key", "kid", "kill", "kind", "kitchen",
	"know", "land", "language", "large", "last", "late", "later",
	"laugh", "law", "lay", "lead", "learn", "least", "leave", "left",
	"leg", "less", "let", "letter", "level", "lie", "life", "light",
	"like", "line", "list", "listen", "little", "live", "local",
	"long", "look", "lose", "lost", "lot", "love", "low", "machine",
	"main", "major", "make", "man", "many", "market", "material",
	"matter", "may", "maybe", "me", "mean", "measure", "media",
	"meet", "member", "memory", "mention", "middle", "might", "mile",
	"military", "million", "mind", "minute", "miss", "model",
	"modern", "moment", "money", "month", "more", "morning", "most",
	"mother", "mouth", "move", "movie", "much", "music", "must",
	"my", "myself", "name", "nation", "nature", "near", "nearly",
	"necessary", "need", "network", "never", "new", "news", "next",
	"nice", "night", "no", "none", "nor", "north", "not", "note",
	"nothing", "notice", "now", "number", "occur", "of", "off",
	"offer", "office", "officer", "official", "often", "oh", "oil",
	"old", "on", "once", "one", "only", "onto", "open", "operation",
	"opportunity", "or", "order", "organization", "other", "others",
	"our", "out", "outside", "over", "own", "page", "pain", "paint",
	"paper", "parent", "park", "part", "particular", "partner",
	"party", "pass", "past", "pattern", "pay", "peace", "people",
	"perform", "perhaps", "period", "person", "phone", "physical",
	"pick", "picture", "piece", "place", "plan", "plant", "play",
	"player", "point", "police", "policy", "political", "poor",
	"popular", "population", "position", "positive", "possible",
	"power", "practice", "prepare", "present", "president", "pressure",
	"pretty", "prevent", "price", "probably", "problem", "process",
	"produce", "product", "professional", "program", "project",
	"provide", "public", "pull", "purpose", "push", "put", "quality",
	"question", "quickly", "quite", "race", "radio", "raise", "range",
	"rate", "rather", "reach", "read", "ready", "real", "realize",
	"really", "reason", "receive", "recent", "recognize", "record",
	"red", "reduce", "region", "relate", "relationship", "remain",
	"remember", "remove", "report", "represent", "require", "research",
	"resource", "respond", "rest", "result", "return", "reveal",
	"rich", "right", "rise", "risk", "road", "rock", "role", "room",
	"round", "rule", "run", "safe", "same", "save", "say", "scene",
	"school", "science", "sea", "season", "seat", "second", "section",
	"security", "see", "seek", "seem", "sell", "send", "senior",
	"sense", "series", "serious", "serve", "service", "set", "seven",
	"several", "shake", "share", "she", "shoot", "short", "shot",
	"should", "shoulder", "show", "side", "sign", "significant",
	"similar", "simple", "simply", "since", "sing", "single", "sister",
	"sit", "site", "situation", "six", "size", "skill", "skin",
	"small", "smile", "so", "social", "society", "soldier", "some",
	"somebody", "someone", "something", "sometimes", "son", "song",
	"soon", "sort", "sound", "source", "south", "space", "speak",
	"special", "specific", "speed", "spend", "sport", "spring",
	"staff", "stage", "stand", "standard", "star", "start", "state",
	"statement", "station", "stay", "step", "still", "stock", "stop",
	"store", "story", "strategy", "street", "strong", "structure",
	"student", "study", "stuff", "style", "subject", "success", "such",
	"suddenly", "suffer", "suggest", "summer", "support", "sure",
	"surface", "system", "table", "take", "talk", "task", "tax",
	"teach", "teacher", "team", "technology", "tell", "ten", "tend",
	"term", "test", "than", "thank", "that", "the", "their", "them",
	"themselves", "then", "theory", "there", "these", "they", "thing",
	"think", "third", "this", "those", "though", "thought", "thousand",
	"threat", "three", "through", "throughout", "throw", "thus",
	"time", "to", "today", "together", "tonight", "too", "top",
	"total", "touch", "toward", "town", "trade", "traditional",
	"training", "travel", "treat", "treatment", "tree", "trial",
	"trip", "trouble", "true", "truth", "try", "turn", "tv", "two",
	"type", "under", "understand", "unit", "until", "up", "upon",
	"us", "use", "usually", "value", "various", "very", "victim",
	"view", "violence", "visit", "voice", "vote", "wait", "walk",
	"wall", "want", "war", "watch", "water", "way", "we", "weapon",
	"wear", "week", "weight", "well", "west", "what", "whatever",
	"when", "where", "whether", "which", "while", "white", "who",
	"whole", "whom", "whose", "why", "wide", "wife", "will", "win",
	"wind", "window", "wish", "with", "within", "without", "woman",
	"wonder", "word", "work", "worker", "world", "worry", "would",
	"write", "wrong", "yard", "yeah", "year", "yes", "yet", "you",
	"young", "your", "yourself",
}
