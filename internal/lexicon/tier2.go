package lexicon

// tier2Words extends tier1Words with a broader set of common English
// lemmas. Words here plus tier1Words together form the "top 5K" tier.
var tier2Words = []string{
	"abandon", "ability", "able", "abroad", "absence", "absolute",
	"absorb", "abuse", "academic", "accept", "access", "accident",
	"accompany", "accomplish", "according", "account", "accurate",
	"accuse", "achieve", "achievement", "acid", "acknowledge",
	"acquire", "across", "action", "active", "activist", "activity",
	"actor", "actress", "actual", "actually", "adapt", "addition",
	"additional", "address", "adequate", "adjust", "administration",
	"admire", "admit", "adopt", "adult", "advance", "advantage",
	"adventure", "advertising", "advice", "advise", "adviser",
	"advocate", "affair", "affect", "afford", "afraid", "african",
	"afternoon", "again", "agency", "agenda", "agent", "aggressive",
	"agree", "agreement", "agricultural", "ahead", "aid", "aide",
	"aim", "aircraft", "airline", "airport", "alarm", "album",
	"alcohol", "alive", "alliance", "allow", "ally", "almost",
	"alter", "alternative", "amazing", "ambassador", "amendment",
	"american", "among", "amount", "analysis", "analyst", "analyze",
	"ancient", "anger", "angle", "angry", "animal", "anniversary",
	"announce", "annual", "anxiety", "anybody", "anymore", "anyway",
	"anywhere", "apart", "apartment", "apparent", "apparently",
	"appeal", "appearance", "apple", "application", "apply",
	"appoint", "appointment", "appreciate", "approach", "appropriate",
	"approval", "approve", "approximately", "arab", "architect",
	"architecture", "argue", "argument", "arise", "arm", "armed",
	"army", "arrange", "arrangement", "arrest", "arrival", "arrow",
	"article", "artist", "artistic", "ash", "aside", "asian", "aspect",
	"assault", "assess", "assessment", "asset", "assign", "assist",
	"assistance", "assistant", "associate", "association", "assume",
	"assumption", "assure", "athlete", "athletic", "atmosphere",
	"attach", "attack", "attempt", "attend", "attention", "attitude",
	"attorney", "attract", "attractive", "attribute", "audience",
	"author", "authority", "auto", "automatically", "autumn",
	"available", "average", "avoid", "award", "aware", "awful",
	"background", "bacteria", "badly", "balance", "ban", "band",
	"bar", "barely", "barrel", "barrier", "baseball", "basic",
	"basically", "basis", "basket", "basketball", "bath", "bathroom",
	"battery", "battle", "beach", "bean", "bear", "beat", "beauty",
	"bedroom", "beer", "behavior", "behind", "belief", "believe",
	"bell", "belong", "belt", "bench", "bend", "beneath", "benefit",
	"beside", "besides", "bet", "beyond", "bias", "bible", "bike",
	"bill", "billion", "bind", "biological", "bit", "bite", "bitter",
	"blade", "blame", "blank", "blanket", "blind", "block", "blow",
	"board", "boast", "boat", "bomb", "bombing", "bond", "bone",
	"bonus", "boom", "boost", "boot", "border", "bother", "bottle",
	"bottom", "bowl", "brain", "branch", "brand", "brave", "bread",
	"breakfast", "breast", "breath", "breathe", "brick", "bridge",
	"brief", "briefly", "bright", "brilliant", "broad", "broadcast",
	"broken", "brown", "brush", "budget", "buck", "bullet", "bunch",
	"burden", "bureau", "burn", "burst", "bury", "bus", "bush",
	"button", "cabinet", "cable", "cake", "calculate", "calendar",
	"calm", "camera", "camp", "campaign", "campus", "canada",
	"cancel", "cancer", "candidate", "cap", "capability", "capable",
	"capacity", "capital", "captain", "capture", "carbon", "career",
	"careful", "carefully", "cargo", "carpet", "cast", "castle",
	"casual", "cat", "catalog", "category", "cattle", "ceiling",
	"celebrate", "celebration", "celebrity", "cell", "cent", "central",
	"century", "ceremony", "chain", "chairman", "challenge", "champion",
	"championship", "channel", "chapter", "charity", "chart", "chase",
	"cheap", "cheat", "check", "cheek", "cheese", "chef", "chemical",
	"chemistry", "chest", "chicken", "chief", "childhood", "chip",
	"chocolate", "choice", "christian", "christmas", "chronic",
	"church", "cigarette", "circle", "circuit", "circumstance",
	"citizen", "civil", "civilian", "claim", "clarify", "clash",
	"classic", "classroom", "clean", "clearly", "client", "climate",
	"climb", "clinic", "clinical", "clip", "clock", "closely",
	"closer", "cloth", "clothes", "clothing", "cloud", "club", "clue",
	"cluster", "coach", "coal", "coalition", "coast", "coat", "code",
	"coffee", "cognitive", "coin", "collapse", "colleague", "collect",
	"collection", "collective", "combination", "combine", "comedy",
	"comfort", "comfortable", "command", "comment", "commercial",
	"commission", "commit", "commitment", "committee", "commonly",
	"communicate", "communication", "compact", "companion",
	"comparison", "compelling", "compete", "competition",
	"competitive", "competitor", "complain", "complaint", "complex",
	"complexity", "compliance", "complicated", "component", "compose",
	"composition", "comprehensive", "comprise", "compute",
	"concentrate", "concentration", "concept", "concern", "concerned",
	"concert", "conclude", "conclusion", "concrete", "condition",
	"conduct", "conference", "confidence", "confident", "confirm",
	"conflict", "confront", "confuse", "confusion", "congress",
	"congressional", "connect", "connection", "conscious", "consensus",
	"consent", "consequence", "conservative", "considerable",
	"consideration", "consist", "consistent", "constant", "constantly",
	"constitute", "constitution", "constitutional", "construct",
	"construction", "consult", "consultant", "consumer", "consumption",
	"contact", "contemporary", "content", "contest", "context",
	"continued", "contract", "contrast", "contribute", "contribution",
	"controversial", "controversy", "convention", "conventional",
	"conversation", "convert", "convince", "cook", "cookie", "cool",
	"cooperation", "cop", "cope", "copy", "core", "corn", "corner",
	"corporate", "corporation", "correct", "correspondent",
	"corruption", "cos", "cost", "cotton", "council", "counselor",
	"count", "counter", "county", "couple", "courage", "court",
	"cousin", "cover", "coverage", "cow", "crack", "craft", "crash",
	"crazy", "cream", "creation", "creative", "creativity", "creature",
	"credit", "crew", "crime", "criminal", "crisis", "criteria",
	"critic", "critical", "criticism", "criticize", "crop", "cross",
	"crowd", "crucial", "crude", "cruise", "crush", "cry", "crystal",
	"cultural", "culture", "cup", "curious", "currency", "current",
	"currently", "curriculum", "custom", "customer", "cycle", "daily",
	"damage", "dance", "dancer", "danger", "dangerous", "dare",
	"database", "daughter", "deadline", "dealer", "dealt", "dear",
	"death", "debate", "debt", "decade", "deck", "declare", "decline",
	"decorate", "decrease", "dedicate", "default", "defend",
	"defendant", "defense", "defensive", "deficit", "define",
	"definitely", "definition", "degree", "delay", "delegate",
	"deliver", "delivery", "demand", "democracy", "democrat",
	"democratic", "demonstrate", "demonstration", "deny", "department",
	"departure", "depend", "dependent", "deploy", "deposit",
	"depression", "depth", "deputy", "derive", "desert", "deserve",
	"desire", "desk", "desperate", "despite", "destination", "destroy",
	"destruction", "detailed", "detect", "determine", "devastate",
	"devastating", "device", "devote", "diagnose", "diagnosis",
	"dialogue", "diamond", "diet", "differ", "difference", "digital",
	"dignity", "dimension", "dinner", "diplomatic", "direct",
	"direction", "directly", "director", "dirt", "dirty", "disability",
	"disabled", "disagree", "disappear", "disaster", "discipline",
	"disclose", "discourse", "discover", "discovery", "discrimination",
	"discuss", "discussion", "disease", "dish", "dismiss", "disorder",
	"display", "dispute", "distance", "distant", "distinct",
	"distinction", "distinguish", "distribute", "distribution",
	"district", "diverse", "diversity", "divide", "division",
	"divorce", "dna", "doctor", "document", "documentary", "dog",
	"domestic", "dominant", "dominate", "donate", "donor", "dose",
	"double", "doubt", "dozen", "draft", "dramatic", "dramatically",
	"drag", "drama", "draw", "drawing", "dress", "drift", "drink",
	"driver", "drug", "dry", "due", "dump", "dust", "duty", "eager",
	"earlier", "earn", "earnings", "earth", "ease", "easily", "eastern",
	"eating", "echo", "ecological", "economics", "economist",
	"economy", "editor", "educate", "education", "educational",
	"effective", "effectively", "efficiency", "efficient", "effort",
	"egg", "elderly", "elect", "election", "electric", "electricity",
	"electronic", "element", "elementary", "eliminate", "elite", "else",
	"elsewhere", "email", "embassy", "embrace", "emerge", "emergency",
	"emission", "emotion", "emotional", "emphasis", "emphasize",
	"empirical", "employ", "employee", "employer", "employment",
	"empty", "enable", "encounter", "encourage", "energy", "enforce",
	"enforcement", "engage", "engagement", "engine", "engineer",
	"engineering", "enhance", "enjoy", "enormous", "ensure",
	"enterprise", "entertainment", "enthusiasm", "entitle", "entry",
	"environment", "environmental", "episode", "equal", "equally",
	"equipment", "equivalent", "era", "error", "essay", "essential",
	"essentially", "establish", "establishment", "estate", "estimate",
	"ethical", "ethics", "ethnic", "european", "evaluate",
	"evaluation", "evening", "evidence", "evident", "evolution",
	"evolve", "exact", "exactly", "exam", "examination", "examine",
	"excellent", "except", "exception", "exchange", "excite",
	"excited", "excitement", "exciting", "exclude", "exclusive",
	"excuse", "execute", "executive", "exercise", "exhibit",
	"exhibition", "exotic", "expand", "expansion", "expense",
	"expensive", "experienced", "experiment", "expert", "explanation",
	"explode", "exploit", "exploration", "explore", "explosion",
	"export", "exposure", "express", "expression", "extend", "extensive",
	"extent", "external", "extra", "extraordinary", "extreme",
	"extremely", "facility", "faculty", "fail", "failure", "faith",
	"fall", "false", "fame", "familiar", "famous", "fan", "fantasy",
	"farm", "farmer", "fashion", "fate", "faster", "fat", "fault",
	"favor", "favorite", "fee", "feature", "federal", "fellow",
	"female", "fence", "festival", "fetch", "fiber", "fiction",
	"fifth", "fifty", "fighter", "fighting", "file", "finally",
	"finance", "financial", "firm", "firmly", "fiscal", "fit",
	"fitness", "fix", "fixed", "flag", "flame", "flat", "flavor",
	"flee", "flesh", "flexibility", "flexible", "flight", "float",
	"flood", "flow", "fluid", "fly", "focus", "fold", "folk",
	"footage", "football", "forecast", "foreign", "forest", "forever",
	"formal", "format", "formation", "former", "formula", "fortune",
	"forth", "fortunately", "forum", "foster", "foundation", "founder",
	"fourth", "fraction", "fragile", "frame", "framework", "franchise",
	"fraud", "freedom", "freeze", "french", "frequency", "frequent",
	"frequently", "fresh", "fridge", "friendly", "friendship",
	"frozen", "frustrate", "frustration", "fuel", "fulfill", "function",
	"fundamental", "funding", "funeral", "funny", "furniture",
	"further", "furthermore", "fusion", "gain", "gallery", "gang",
	"gap", "garage", "gasoline", "gather", "gay", "gaze", "gear",
	"gender", "gene", "generally", "generate", "generation",
	"generous", "genetic", "genius", "gentle", "gently", "genuine",
	"geography", "german", "gesture", "ghost", "giant", "gift", "given",
	"glad", "glance", "global", "glory", "golden", "golf", "gonna",
	"gorgeous", "gospel", "gossip", "govern", "government", "governor",
	"grab", "grade", "gradually", "graduate", "grain", "grand",
	"grandfather", "grandmother", "grant", "graphic", "grass", "grave",
	"gray", "grocery", "gross", "guard", "guest", "guide", "guideline",
	"guilty", "habit", "habitat", "hallway", "handful", "handle",
	"hang", "harbor", "harm", "harsh", "harvest", "hat", "hate",
	"hatred", "headline", "headquarters", "heal", "healthy", "hearing",
	"height", "helicopter", "hell", "helmet", "hence", "herb",
	"heritage", "hero", "hesitate", "highlight", "highly", "highway",
	"hill", "hint", "hip", "hire", "historian", "historic", "historical",
	"hockey", "holder", "holiday", "hollywood", "holy", "homeless",
	"homework", "honest", "honey", "honor", "hook", "horizon", "horror",
	"horrible", "host", "housing", "hug", "humanity", "humor", "hunt",
	"hunter", "hunting", "hurricane", "hurt", "ice", "icon",
	"identification", "identify", "identity", "ignore", "ill",
	"illegal", "illness", "illustrate", "image", "imagination",
	"immediate", "immediately", "immigrant", "immigration", "impact",
	"implement", "implication", "imply", "importance", "impose",
	"impossible", "impress", "impression", "impressive", "incentive",
	"incident", "incidence", "incline", "income", "incorporate",
	"increase", "increased", "increasingly", "incredible", "index",
	"indicator", "individual", "industrial", "industry", "inevitable",
	"infant", "infect", "infection", "inflation", "influence",
	"inform", "information", "infrastructure", "ingredient",
	"initial", "initially", "initiate", "initiative", "injure",
	"injury", "inner", "innocent", "innovation", "input", "inquiry",
	"insect", "insert", "insight", "insist", "inspect", "inspector",
	"inspiration", "inspire", "install", "instance", "instant",
	"institution", "institutional", "instruction", "instructor",
	"instrument", "insurance", "intellectual", "intelligence",
	"intelligent", "intend", "intense", "intensity", "intention",
	"interact", "interaction", "interest", "interesting", "interior",
	"internal", "international", "internet", "interpret",
	"interpretation", "interval", "intervene", "intervention",
	"interview", "intimate", "introduce", "introduction", "invasion",
	"invest", "investigate", "investigation", "investigator",
	"investment", "investor", "invite", "involved", "involvement",
	"iron", "island", "isolate", "israeli", "jail", "jet", "jewelry",
	"join", "joint", "joke", "journalist", "journey", "joy", "judge",
	"judgment", "juice", "jump", "junior", "jury", "justice", "justify",
	"keyboard", "kick", "kidney", "kingdom", "knee", "knife", "knock",
	"knowledge", "korean", "lab", "label", "labor", "laboratory",
	"lack", "ladder", "lady", "lake", "lamp", "landscape", "lane",
	"lap", "laptop", "largely", "largest", "latest", "latter",
	"laughter", "launch", "lawn", "lawsuit", "lawyer", "layer", "lazy",
	"lean", "leather", "lecture", "legacy", "legal", "legend",
	"legislation", "legislative", "legislature", "legitimate",
	"leisure", "lemon", "lend", "length", "lens", "lesson", "liberal",
	"library", "license", "lifestyle", "lifetime", "lift", "likely",
	"limit", "limitation", "limited", "link", "lip", "liquid", "list",
	"literally", "literary", "literature", "liver", "living", "loan",
	"lobby", "location", "lock", "log", "logic", "logical", "lonely",
	"loop", "loose", "lord", "loss", "lovely", "lover", "loyal",
	"loyalty", "luck", "lucky", "lunch", "lung", "luxury", "mad",
	"magazine", "magic", "maintain", "maintenance", "majority", "male",
	"mall", "mammal", "manage", "management", "manager", "manner",
	"manufacture", "manufacturer", "manufacturing", "manuscript",
	"march", "margin", "marine", "mark", "marketing", "marriage",
	"married", "marry", "mask", "mass", "massive", "master", "match",
	"mate", "math", "mathematics", "maximum", "mayor", "meal",
	"meaning", "meaningful", "meanwhile", "measurement", "meat",
	"mechanic", "mechanical", "mechanism", "medal", "medical",
	"medication", "medicine", "medieval", "medium", "melt", "membership",
	"memoir", "mental", "mentally", "mentor", "menu", "mere", "merely",
	"merge", "mess", "message", "metal", "method", "mexican", "microphone",
	"midnight", "migration", "milestone", "military", "milk", "mill",
	"mineral", "minimal", "minimum", "minister", "minor", "minority",
	"miracle", "mirror", "missile", "mission", "mistake", "mix",
	"mixture", "mobile", "mode", "moderate", "modest", "module", "mood",
	"moral", "mortgage", "mostly", "motion", "motivate", "motivation",
	"motor", "mount", "mountain", "mouse", "movement", "muscle",
	"museum", "mushroom", "mysterious", "mystery", "myth", "naked",
	"narrative", "narrow", "nasty", "national", "native", "natural",
	"naturally", "navy", "neat", "negative", "neglect", "negotiate",
	"negotiation", "neighbor", "neighborhood", "nerve", "nervous",
	"net", "neutral", "newly", "newspaper", "nightmare", "nobody",
	"nod", "noise", "nomination", "nominee", "nonprofit", "nonetheless",
	"normal", "normally", "notable", "notably", "novel", "nowhere",
	"nuclear", "numerous", "nurse", "nut", "nutrition", "obesity",
	"obey", "object", "objective", "obligation", "observation",
	"observe", "observer", "obstacle", "obtain", "obvious", "obviously",
	"occasion", "occasionally", "occupation", "occupy", "odd", "odds",
	"offense", "offensive", "offering", "ongoing", "onion", "online",
	"operate", "operator", "opinion", "opponent", "oppose", "opposite",
	"opposition", "optimistic", "option", "orange", "organic",
	"organize", "orientation", "origin", "original", "originally",
	"otherwise", "ought", "ounce", "outcome", "outdoor", "outfit",
	"outline", "output", "outstanding", "oven", "overall", "overcome",
	"overlook", "overnight", "overseas", "overwhelm", "owe", "owner",
	"ownership", "oxygen", "pace", "pack", "package", "packet", "palace",
	"palm", "pan", "panel", "panic", "parade", "paragraph", "parallel",
	"parameter", "parking", "parliament", "participant", "participate",
	"participation", "particularly", "partly", "partnership", "passage",
	"passenger", "passion", "passive", "passport", "path", "patient",
	"patient", "patrol", "pattern", "pause", "pay", "payment", "peak",
	"peer", "penalty", "pencil", "pension", "percent", "percentage",
	"perception", "permanent", "permission", "permit", "persist",
	"personal", "personality", "personally", "personnel", "perspective",
	"persuade", "pet", "phase", "phenomenon", "philosopher",
	"philosophy", "photo", "photograph", "photographer", "phrase",
	"physician", "physics", "pile", "pilot", "pine", "pink", "pipe",
	"pipeline", "pitch", "plastic", "plate", "platform", "pleasant",
	"please", "pleasure", "plenty", "plot", "plunge", "plus", "pocket",
	"podcast", "poem", "poet", "poetry", "poll", "pollution", "pond",
	"pool", "poorly", "pop", "portion", "portrait", "portray", "pose",
	"potato", "potential", "potentially", "pound", "pour", "poverty",
	"powder", "powerful", "practical", "praise", "pray", "prayer",
	"precise", "precisely", "predict", "prediction", "prefer",
	"preference", "pregnancy", "pregnant", "premium", "presence",
	"preserve", "presidential", "press", "pressure", "presumably",
	"pretend", "prevention", "previous", "previously", "prey", "priest",
	"primarily", "primary", "prime", "principle", "print", "prior",
	"priority", "prison", "prisoner", "privacy", "private", "privilege",
	"prize", "procedure", "proceed", "proceeding", "profession",
	"professor", "profile", "profit", "profound", "progress",
	"progressive", "prohibit", "project", "prominent", "promise",
	"promote", "prompt", "proof", "proper", "properly", "property",
	"proportion", "proposal", "propose", "proposed", "prosecutor",
	"prospect", "protect", "protection", "protein", "protest",
	"proud", "prove", "province", "provision", "provoke", "psychiatrist",
	"psychological", "psychology", "publication", "publicly",
	"publish", "publisher", "punish", "punishment", "pupil", "puppy",
	"purchase", "pure", "purely", "pursue", "pursuit", "quarter",
	"queen", "quick", "quiet", "quit", "quote", "racial", "racism",
	"radical", "railroad", "rain", "ranch", "random", "ranking",
	"rapid", "rapidly", "rare", "rarely", "ratio", "raw", "ray",
	"reaction", "reader", "readily", "reading", "reception", "recipe",
	"recipient", "reckon", "recognition", "recommend", "recommendation",
	"reconcile", "reconsider", "recover", "recovery", "recruit",
	"refer", "reference", "reflect", "reflection", "reform", "refugee",
	"refusal", "refuse", "regard", "regardless", "regime", "regional",
	"register", "registration", "regret", "regular", "regularly",
	"regulate", "regulation", "regulatory", "reinforce", "reject",
	"rejection", "relative", "relatively", "relax", "release",
	"relevant", "reliable", "relief", "religion", "religious", "rely",
	"remarkable", "remarkably", "remind", "remote", "render",
	"renew", "rent", "repair", "repeat", "repeatedly", "replace",
	"reply", "reportedly", "reporter", "represent", "representation",
	"representative", "reproduce", "reproduction", "republic",
	"republican", "reputation", "request", "require", "requirement",
	"rescue", "resemble", "reservation", "reserve", "residence",
	"resident", "residential", "resign", "resist", "resistance",
	"resolution", "resolve", "respect", "respective", "respond",
	"respondent", "response", "responsibility", "responsible", "rest",
	"restaurant", "restore", "restrict", "restriction", "resume",
	"retail", "retain", "retire", "retirement", "retreat", "retrieve",
	"reveal", "revenue", "reverse", "review", "revise", "revolution",
	"revolutionary", "reward", "rhetoric", "rhythm", "rice", "ride",
	"ridiculous", "rifle", "ring", "riot", "ripe", "ritual", "rival",
	"river", "roast", "robot", "rocket", "rocky", "romantic", "roof",
	"rough", "roughly", "route", "routine", "row", "royal", "rub",
	"rubber", "ruin", "ruling", "rumor", "rural", "rush", "russian",
	"sacred", "sacrifice", "sad", "salad", "salary", "sale", "sample",
	"sanction", "satellite", "satisfaction", "satisfy", "sauce",
	"savings", "scale", "scandal", "scared", "scenario", "schedule",
	"scholar", "scholarship", "scope", "score", "scream", "screen",
	"script", "scrutiny", "sculpture", "seal", "search", "seat",
	"secret", "secretary", "section", "sector", "secure", "security",
	"seed", "seek", "select", "selection", "self", "seminar", "senate",
	"senator", "separate", "separately", "sequence", "session",
	"settle", "settlement", "setup", "seventh", "severe", "severely",
	"sexual", "shade", "shadow", "shallow", "shame", "shape", "share",
	"shared", "sharp", "sheep", "sheet", "shelf", "shell", "shelter",
	"shift", "shine", "ship", "shirt", "shock", "shoe", "shop",
	"shopping", "shore", "shrink", "shut", "sibling", "sick", "signal",
	"signature", "significantly", "silence", "silent", "silk",
	"silver", "similarly", "simultaneously", "sin", "sing", "singer",
	"sink", "sister", "sit", "site", "skate", "sketch", "ski", "skip",
	"sky", "slave", "slavery", "sleep", "slice", "slide", "slight",
	"slightly", "slip", "slope", "slow", "slowly", "smart", "smartphone",
	"smell", "smoke", "smooth", "snap", "sneak", "snow", "soap",
	"soccer", "solar", "soldier", "sole", "solely", "solid", "solution",
	"solve", "somehow", "somewhat", "somewhere", "soul", "soup",
	"souvenir", "sovereign", "soviet", "spanish", "spark", "sparse",
	"spatial", "speaker", "species", "specifically", "specify",
	"spectacular", "spectrum", "speculation", "spell", "spin", "spirit",
	"spiritual", "spite", "split", "spokesman", "sponsor", "spot",
	"spouse", "spread", "spring", "spy", "squad", "square", "squeeze",
	"stability", "stable", "stack", "stadium", "staff", "stake",
	"stance", "standing", "star", "stare", "startup", "starve",
	"statistic", "statue", "status", "steady", "steal", "steel",
	"steep", "stem", "step", "stereotype", "stick", "sticky", "stiff",
	"stimulate", "stimulus", "stir", "stock", "stomach", "storage",
	"storm", "straight", "strain", "strand", "strange", "stranger",
	"strategic", "stream", "strength", "strengthen", "stress",
	"stretch", "strict", "strictly", "strike", "string", "strip",
	"stroke", "struggle", "stuck", "student", "studio", "stumble",
	"stun", "stupid", "submit", "subsequent", "subsidy", "substance",
	"substantial", "substitute", "subtle", "suburb", "succeed",
	"successful", "successfully", "successor", "sudden", "sue",
	"suffering", "sufficient", "sugar", "suggestion", "suicide", "suit",
	"suitable", "suite", "sum", "summary", "summit", "sunlight",
	"sunny", "sunset", "superior", "supervisor", "supplement",
	"supply", "surgeon", "surgery", "surprise", "surprised",
	"surprising", "surprisingly", "surround", "surrounding",
	"survey", "survival", "survive", "survivor", "suspect", "suspend",
	"suspicion", "suspicious", "sustain", "sustainable", "swap",
	"swear", "sweep", "sweet", "swim", "swing", "switch", "symbol",
	"symbolic", "sympathy", "symptom", "syndrome", "syrian", "tablet",
	"tackle", "tactic", "tale", "talent", "talented", "tank", "tap",
	"tape", "target", "tariff", "taste", "tea", "teaching", "tear",
	"technical", "technique", "teen", "teenager", "telephone",
	"telescope", "television", "temperature", "temple", "temporary",
	"tempt", "tenant", "tendency", "tennis", "tension", "tent", "terms",
	"terrain", "terrible", "territory", "terror", "terrorism",
	"terrorist", "testify", "testimony", "testing", "text", "textbook",
	"texture", "theater", "theme", "theoretical", "therapy", "thereby",
	"thesis", "thin", "thorough", "thoroughly", "thread", "threaten",
	"threshold", "thrive", "throat", "thumb", "thunder", "ticket",
	"tide", "tie", "tight", "timber", "timing", "tiny", "tip", "tire",
	"tired", "tissue", "tobacco", "toe", "tomato", "tomorrow", "tone",
	"tongue", "tonight", "tool", "tooth", "topic", "torture", "toss",
	"toward", "towards", "tower", "toy", "trace", "track", "tractor",
	"trail", "train", "trait", "transaction", "transfer", "transform",
	"transformation", "transition", "translate", "translation",
	"transmission", "transparency", "transparent", "transport",
	"transportation", "trap", "trauma", "treasure", "treaty", "tremendous",
	"tribal", "tribe", "trick", "trigger", "trillion", "triumph",
	"tropical", "trust", "tube", "tuition", "tunnel", "turkey",
	"twelve", "twenty", "twice", "twin", "twist", "ultimate",
	"ultimately", "unable", "uncertain", "uncertainty", "uncle",
	"undergo", "underground", "underline", "undermine", "underneath",
	"undertake", "unemployment", "unexpected", "unfair", "unfold",
	"unfortunately", "uniform", "union", "unique", "unit", "united",
	"universal", "universe", "university", "unknown", "unless",
	"unlike", "unlikely", "unprecedented", "unusual", "update",
	"upgrade", "uphold", "upper", "urban", "urge", "urgent", "usage",
	"user", "usual", "utility", "utilize", "vacation", "vaccine",
	"valid", "valley", "valuable", "vanish", "variable", "variation",
	"variety", "vary", "vast", "vegetable", "vehicle", "vendor",
	"venture", "venue", "verbal", "verdict", "verify", "verse",
	"version", "vessel", "veteran", "via", "vice", "vicious", "victim",
	"victory", "video", "vietnam", "village", "violate", "violation",
	"violent", "virtual", "virtue", "virus", "visible", "vision",
	"visual", "vital", "vitamin", "vivid", "volume", "volunteer",
	"vulnerable", "wage", "wagon", "wake", "walker", "wander",
	"warehouse", "warm", "warn", "warning", "warrior", "watershed",
	"wave", "wax", "wealth", "wealthy", "weapon", "wedding", "weed",
	"weekend", "weekly", "weird", "welcome", "welfare", "western",
	"wet", "whatsoever", "wheat", "wheel", "wherever", "whilst",
	"whisper", "widely", "widespread", "width", "wild", "wilderness",
	"willing", "willingness", "wine", "wing", "winner", "winter",
	"wire", "wisdom", "wise", "witness", "wolf", "wonderful", "wood",
	"wooden", "wool", "workforce", "workout", "workplace", "workshop",
	"worldwide", "worried", "worse", "worship", "worst", "worth",
	"worthy", "wound", "wrap", "wrist", "yell", "yellow", "yesterday",
	"yield", "youth", "zone",
}
