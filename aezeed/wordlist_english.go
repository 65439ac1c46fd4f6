package aezeed

// englishWords is the default wordlist used to encode and decode cipher
// seeds as human readable mnemonics. It contains exactly 2^11 = 2048
// entries so that each word can encode exactly 11 bits, the same framing
// BIP39 uses for its wordlists.
var englishWords = [wordListSize]string{
	"babu", "baca", "baci", "badano", "badi", "bafa", "bafir", "bafo",
	"bafu", "baga", "baka", "bakevat", "bama", "bamu", "bapima", "bapo",
	"bapuge", "basi", "bawuvem", "bazul", "bebe", "beca", "becamo", "bedo",
	"bedum", "befibu", "befis", "befute", "begi", "begu", "beha", "behet",
	"behiri", "bejesa", "bekuhe", "bela", "bemat", "bemi", "bemud", "bemuki",
	"bene", "benin", "bepipam", "beran", "bere", "bese", "betaba", "betafun",
	"beto", "bevede", "bevuha", "bewe", "beze", "bezilun", "bezum", "bibi",
	"bibusa", "bicaco", "bice", "bico", "bidam", "bide", "bidilo", "bife",
	"biga", "bigo", "bihed", "bila", "bilut", "bimodo", "binu", "biru",
	"bisol", "bitipa", "biwi", "bizal", "bobe", "bobufe", "boda", "bodit",
	"bogeno", "bogo", "bohuno", "bojad", "boje", "bojiro", "bolabu", "bole",
	"boneci", "bonol", "borujo", "bosegu", "bosi", "botewe", "boti", "botu",
	"bowi", "bozehot", "bubaha", "bubu", "bucet", "bucino", "buco", "bude",
	"budul", "bufe", "bufi", "bufuba", "bugeza", "bugo", "bugos", "bugotu",
	"bugu", "buhu", "buhuba", "buju", "bukaci", "buki", "bulije", "bumer",
	"buna", "bupi", "bure", "buro", "buru", "bused", "butazu", "buvadu",
	"buze", "cacu", "cadaju", "cade", "cago", "cagu", "caha", "cahu",
	"cahudu", "cajeke", "cajur", "cami", "camu", "camuse", "cana", "cano",
	"caraze", "cata", "catal", "cava", "cavo", "cawut", "caze", "cazi",
	"cebal", "cecar", "ceci", "cecuten", "cedel", "cedet", "cedu", "cefid",
	"cefuro", "ceginu", "cegol", "ceja", "cejiki", "cenonen", "cepi", "ceribu",
	"cesa", "cese", "ceti", "cetusi", "cewi", "cewo", "ceze", "cico",
	"cidu", "cigo", "cigu", "ciha", "cihu", "cika", "cile", "cili",
	"cilo", "cimohe", "cini", "cinu", "cipat", "cipezo", "cipo", "ciri",
	"cisad", "cisefo", "cisoju", "citis", "citol", "citonu", "civa", "civapi",
	"ciwe", "cofoje", "coge", "cogelur", "cogo", "cohu", "coku", "colegol",
	"coli", "colu", "coma", "comam", "copo", "coru", "coso", "cotawem",
	"covor", "cowezit", "cowi", "coza", "cubaji", "cube", "cuco", "cudi",
	"cufi", "cufidu", "cuhu", "cuhubu", "cujelod", "cuji", "cukiwi", "cula",
	"cumocu", "cune", "cupa", "cupi", "curupo", "cuse", "cuvasi", "cuve",
	"cuwi", "dabo", "daboki", "daca", "dacivet", "dacozir", "dafa", "dafe",
	"dafo", "dafu", "dagid", "dahate", "dahu", "dajabo", "dajim", "dane",
	"danu", "dapi", "dariwom", "dasu", "data", "date", "dave", "davi",
	"dawo", "dawojo", "decamen", "deda", "dededi", "defovu", "degajis", "degon",
	"dehi", "deku", "depu", "deramu", "deraru", "derulo", "desapu", "desi",
	"desor", "devafid", "dewo", "dezasur", "dezi", "dezim", "dicu", "difor",
	"difu", "digiji", "digo", "dihi", "dihuco", "diko", "diku", "diles",
	"dilome", "dipo", "dira", "dirat", "diro", "dise", "disom", "diti",
	"doco", "dogepu", "dohe", "dohi", "dola", "domume", "dopa", "dori",
	"doru", "doso", "dowi", "duca", "ducipi", "duco", "dudo", "dudu",
	"dufos", "duge", "duha", "duko", "dulam", "dulegol", "dulojo", "duluril",
	"duna", "dunewu", "dunipi", "durot", "dusam", "duvu", "fabed", "fabo",
	"fabupam", "facur", "fafele", "fafo", "faful", "fahes", "fajut", "fakad",
	"fali", "famor", "fasa", "faten", "fato", "fatud", "favidi", "favoja",
	"fawe", "fawoze", "faze", "fazir", "fazopo", "fecu", "feder", "fefena",
	"fefo", "fega", "fegad", "feha", "fehi", "fehoba", "fejedi", "feke",
	"fekuwe", "feli", "felipol", "feliri", "felomur", "feme", "feni", "fenu",
	"fera", "feren", "ferini", "fesanam", "feso", "feta", "fetar", "fevi",
	"feze", "fibad", "fibe", "ficu", "fifuce", "figabi", "figadi", "figipa",
	"fihe", "fiji", "fike", "fikigo", "fiku", "filubu", "fipujul", "fipum",
	"firutel", "fivame", "fiwu", "fizago", "fizo", "fizude", "fobebo", "fobozit",
	"foca", "foco", "fodeki", "fodo", "fofodum", "fofojo", "fogem", "fogi",
	"foho", "foja", "fojan", "fojawo", "fola", "folal", "fomi", "fonaru",
	"fopajo", "forele", "foro", "fovazu", "fove", "fubego", "fude", "fugi",
	"fugozul", "fuhi", "fuho", "fuje", "fujuci", "fukepi", "fuko", "fuloge",
	"fulu", "fuma", "fumitam", "fupe", "fupi", "fuputat", "furube", "fusi",
	"fusoha", "fusu", "fusuli", "fuva", "fuvus", "fuwo", "fuzahu", "gabo",
	"gabu", "gada", "gader", "gadiba", "gado", "gafe", "gafobo", "gahata",
	"gahid", "gaju", "gaki", "gali", "galimo", "gamel", "gami", "gamilu",
	"gamo", "gape", "gapugi", "gari", "garun", "gave", "gavud", "gaziha",
	"gebobar", "gebowu", "gefo", "gefoko", "gefol", "gefolo", "gefu", "gegi",
	"geju", "gekimu", "gena", "genat", "genufa", "gepa", "geravi", "geroha",
	"gerubim", "gesude", "geta", "gewodo", "gewosas", "geza", "gicison", "gidu",
	"gifahu", "gifi", "gifod", "gihe", "gihivis", "gijid", "gikenun", "gimucu",
	"gine", "girazem", "gitan", "gito", "giveju", "giwa", "gize", "gizut",
	"gobadi", "gobuhe", "goce", "godozu", "gofer", "goga", "gogi", "gohi",
	"gohom", "gojemo", "golajo", "goli", "gone", "goni", "gopomo", "gopume",
	"gora", "gotapo", "gote", "goti", "goto", "govo", "govu", "gowa",
	"gozami", "gozo", "guca", "guda", "gufiko", "gufoni", "guful", "gugeka",
	"gugo", "gugome", "gugudi", "guje", "guji", "guke", "guli", "gulofod",
	"gumira", "gunuce", "gupiha", "gusawim", "guso", "guvijo", "guwel", "guza",
	"guzu", "haba", "habuzan", "hacud", "hadihi", "hafazo", "hafu", "hagum",
	"hajon", "haju", "haka", "hala", "hami", "hamici", "hamosi", "hapekum",
	"hapi", "hare", "hasa", "hated", "hatu", "have", "havuvi", "hawo",
	"hawon", "hazalan", "heba", "hebe", "heda", "hefe", "hefufo", "hegi",
	"heha", "hekaca", "hekiwid", "hekoni", "hela", "heli", "helus", "hemi",
	"hemil", "hemuke", "hera", "herelo", "hesecu", "hetu", "hezate", "hibi",
	"hifose", "higafal", "higo", "higura", "hiha", "hihe", "hihi", "hihos",
	"hiji", "hijo", "hijos", "hika", "hiled", "hili", "hilova", "hime",
	"hiniga", "hinucir", "hinud", "hinul", "hira", "hiroki", "hirosu", "hiru",
	"hise", "hisibu", "hitir", "hiva", "hivali", "hivu", "hivum", "hiza",
	"hize", "hizim", "hizo", "hoba", "hobonul", "hocimel", "hocodo", "hode",
	"hodu", "hofe", "hofumes", "hohi", "hoho", "hoholer", "holikot", "home",
	"homu", "hones", "honilu", "honu", "honuka", "hopeci", "hopusa", "hora",
	"horo", "horu", "hosi", "hoto", "hova", "hovi", "hovu", "howa",
	"howira", "huban", "hucul", "hudi", "hugibit", "huhe", "huhute", "huhuze",
	"hujeti", "huki", "hulu", "hulum", "huma", "hune", "hunun", "hupito",
	"hupu", "huru", "husi", "husuce", "hute", "huto", "huvi", "huviju",
	"huwava", "jabu", "jaburi", "jafur", "jagaco", "jagufu", "jahar", "jaho",
	"jahusar", "jahut", "jaje", "jaku", "jala", "jama", "jame", "jaral",
	"jareto", "jaso", "jasu", "jati", "jato", "javi", "jazisel", "jazu",
	"jebi", "jeded", "jedomu", "jefize", "jefu", "jegener", "jegi", "jegor",
	"jeha", "jehe", "jehi", "jehube", "jejehu", "jemifo", "jena", "jepazin",
	"jeroma", "jesad", "jesufu", "jeta", "jetu", "jevi", "jevul", "jewat",
	"jewila", "jewo", "jeze", "jezi", "jezora", "jibo", "jibu", "jidu",
	"jiga", "jihi", "jije", "jiji", "jimelat", "jine", "jipi", "jipu",
	"jira", "jireca", "jirim", "jisa", "jisi", "jisute", "jitoja", "jitu",
	"jiva", "jival", "jive", "jivoma", "jiwa", "jiwe", "jiwer", "jiwihi",
	"jizu", "joca", "joci", "jociji", "joco", "joha", "johi", "jojedir",
	"jojo", "joju", "joko", "jole", "joma", "jomode", "jora", "joraki",
	"jore", "jotu", "jovenel", "jovewi", "jovi", "jowoti", "jozena", "jubas",
	"jube", "jubo", "juci", "juhi", "juhome", "juhomi", "jujira", "jujozid",
	"julat", "jumugu", "juru", "jusus", "juta", "juva", "juveni", "juvi",
	"juvon", "juvu", "juwacat", "juwados", "juzo", "kaba", "kabafin", "kaci",
	"kada", "kafa", "kafego", "kafogu", "kaga", "kagaji", "kagi", "kagit",
	"kahaho", "kahol", "kaka", "kanilu", "kanimo", "kapipe", "kasi", "kasuvo",
	"kata", "kavicu", "kawefi", "kaza", "kazen", "kazene", "kebid", "keboha",
	"kebu", "kece", "kegiko", "kegu", "keho", "kelom", "keme", "kemeke",
	"kemope", "kena", "kened", "keni", "kere", "keri", "keroged", "kesele",
	"kesujor", "ketum", "ketuvu", "kevi", "kevo", "kevova", "kezasi", "kico",
	"kidu", "kifi", "kifocol", "kihima", "kikijo", "kimero", "kimoce", "kina",
	"kinum", "kipogas", "kipu", "kire", "kiri", "kiris", "kitu", "kiwaha",
	"kiwi", "kize", "kodo", "kofem", "kofo", "koga", "koho", "kojo",
	"kokaka", "koku", "konin", "kope", "kopi", "koron", "kosi", "kowa",
	"kowejos", "kowi", "kozata", "kozol", "kubedod", "kucir", "kucu", "kudoga",
	"kuho", "kuhu", "kujem", "kukuka", "kule", "kumewo", "kumi", "kumojos",
	"kuneso", "kupo", "kuru", "kusa", "kusewa", "kuta", "kuti", "kutoku",
	"kutu", "kuvere", "kuvu", "kuwa", "kuwod", "labul", "ladilen", "ladizi",
	"lafa", "laface", "lafira", "lafuli", "lage", "lahi", "lahos", "laje",
	"laki", "lakozi", "lalo", "lalu", "lamafi", "lapi", "lapoto", "lari",
	"lasefot", "latara", "laviwu", "lavo", "lavu", "lawa", "lawu", "leba",
	"lebi", "leboli", "leci", "lecuze", "lefe", "lefunar", "lefupo", "legumor",
	"lehe", "lejil", "leke", "lenazo", "lenom", "lenun", "lepu", "lera",
	"lere", "leri", "leso", "lesoja", "leta", "lete", "letiga", "levepe",
	"levuvu", "leza", "lezezer", "libe", "licinit", "lico", "licopu", "life",
	"lifi", "lifo", "lige", "ligo", "lihu", "lihumo", "liju", "likiza",
	"liko", "linu", "lira", "liso", "lito", "liton", "livage", "livor",
	"liwaza", "liwehi", "liwo", "lizar", "loca", "locu", "lodi", "lodom",
	"lofipa", "loga", "logol", "lohad", "lojut", "loku", "lola", "loma",
	"lonuba", "losekon", "losu", "lotu", "lotuhet", "lovale", "lovoku", "lowopa",
	"lozi", "lucelol", "lucezem", "ludezo", "lugad", "lugi", "lugo", "lugofu",
	"luhar", "luhit", "lujos", "lukuso", "lunes", "lunire", "luno", "lunocu",
	"lupet", "luri", "lusi", "lusupu", "luta", "lutun", "luzes", "luzibor",
	"mahe", "mahi", "maki", "makizo", "mako", "malinun", "mana", "mape",
	"mapere", "maru", "masipo", "maso", "masu", "mature", "mavu", "mazi",
	"mazovor", "mebe", "mebi", "mecador", "meceku", "mefege", "megid", "megoda",
	"megu", "mehi", "meje", "mejuja", "mekiti", "memi", "menat", "meni",
	"menojo", "menu", "mepehil", "mepi", "mepo", "meva", "mevi", "mevipel",
	"mewa", "mibal", "micil", "miga", "mihu", "mijazit", "mike", "mikeca",
	"mila", "milo", "milud", "miniho", "minom", "mipa", "mipezen", "miracor",
	"miri", "misa", "misoli", "mitohi", "mivem", "miwa", "miwuje", "miza",
	"mizozid", "mobi", "moce", "moci", "mocogar", "mocun", "moda", "mofidi",
	"moge", "mojusi", "mome", "mosa", "mosamas", "mosumim", "moterom", "motu",
	"move", "movobe", "mowime", "moza", "mozi", "mozijed", "mubile", "mubu",
	"mubul", "mucume", "mudu", "mudume", "muduwu", "mugi", "mugije", "mugu",
	"muho", "muke", "muma", "mupu", "murom", "musa", "musi", "muva",
	"muze", "muzuhi", "nabe", "nace", "nadel", "nadiku", "nadu", "nadufe",
	"nafar", "nafe", "nagogut", "nagu", "najit", "najo", "nalinu", "nalu",
	"nalur", "nama", "namapit", "nanedi", "narewe", "naru", "narur", "nase",
	"natekit", "nave", "navegis", "nawo", "nazi", "nebaru", "nebu", "neda",
	"nedapo", "nedu", "nega", "nehidu", "neho", "neje", "nela", "nemi",
	"nenol", "nepegi", "nepi", "nesuku", "nesun", "neve", "newe", "neze",
	"nezo", "nibu", "nicaci", "nicu", "nide", "nifekom", "nifon", "niga",
	"nigu", "niha", "nihon", "nile", "ninihom", "nipurin", "nitisa", "nitol",
	"nitu", "nituto", "niva", "nivel", "niwoho", "niwubo", "noci", "nocire",
	"nocupi", "nodor", "nogi", "nogo", "nohupat", "noko", "nokusu", "nome",
	"nomemar", "nonu", "nonut", "nopivo", "nora", "nosu", "nosume", "nota",
	"notaji", "noti", "nove", "novujur", "nowo", "noworo", "nowuja", "nubel",
	"nubul", "nubuma", "nucebo", "nucece", "nucu", "nudate", "nudesu", "nudid",
	"nufewom", "nuga", "nugava", "nuha", "nuhad", "nuhesa", "nuhis", "nuhu",
	"nuku", "nume", "nuno", "nupi", "nuro", "nuru", "nusa", "nusehid",
	"nusel", "nusofa", "nuweso", "nuwesu", "nuzazun", "pabeko", "pabun", "paci",
	"pafosu", "pahe", "pahebo", "pajer", "paji", "pajod", "pale", "paned",
	"panu", "papoce", "papupor", "parigi", "paro", "paru", "parun", "pase",
	"pasebe", "pawa", "pawas", "pebece", "pebu", "pebujo", "pecu", "peda",
	"pega", "pege", "peged", "pehe", "peho", "pejes", "pejir", "pejon",
	"pelem", "peno", "pepit", "pere", "pero", "pesat", "pesi", "pevi",
	"pevin", "pewu", "pezar", "peze", "pibon", "pibusol", "pigiwu", "pihaker",
	"pihe", "piho", "pijuha", "piku", "pimapen", "pimi", "pinu", "pipat",
	"piri", "pisowo", "pisu", "pite", "pitige", "pivo", "pivu", "pocul",
	"pode", "pofi", "pofil", "pohiju", "pohu", "polo", "pomo", "popocu",
	"pori", "potovim", "potu", "potur", "pova", "pove", "povorod", "pozi",
	"pubam", "pubol", "pudele", "pufa", "pufo", "puge", "puhiwa", "puja",
	"pukiki", "pukor", "pukubo", "pukuze", "pulo", "pumaco", "pumejel", "pumiji",
	"pumowid", "pumu", "pumud", "pumut", "puni", "puno", "pura", "puriban",
	"pusa", "puso", "pusol", "puta", "putakul", "putu", "puvol", "puwu",
	"puza", "puzus", "rabo", "racen", "radejin", "rafibe", "rafol", "ragesom",
	"rahana", "rajudut", "rakufi", "rali", "ralomi", "ralu", "rameco", "ramo",
	"rane", "raneza", "rano", "ranom", "ranot", "rapa", "rapo", "rarit",
	"rarube", "raselul", "ratan", "rato", "rebusa", "redo", "refo", "regipe",
	"reguri", "rehana", "rejowa", "reju", "rekan", "rekutil", "relo", "relu",
	"rema", "remi", "renapo", "reper", "repu", "retam", "retu", "revige",
	"revis", "revizil", "rewi", "rezobi", "ricivis", "riful", "rigafe", "rigu",
	"rihet", "rihos", "rike", "rikuzol", "rila", "riledis", "rimabit", "rinacur",
	"rineni", "rira", "riseko", "riti", "riwa", "riwid", "riwo", "rizefe",
	"rizi", "robe", "rodafe", "rofi", "rogu", "rohe", "rojife", "rokatu",
	"romu", "ronala", "ronat", "ronon", "ronot", "rosuwi", "roti", "rotira",
	"rotul", "rova", "rubo", "rubos", "rubosam", "ruca", "rufo", "rugi",
	"ruhas", "ruhezas", "ruhum", "ruladi", "rulane", "runa", "rupenu", "ruso",
	"rusu", "rutegu", "ruvuno", "ruvuzo", "ruwas", "saca", "sace", "saci",
	"sadi", "safum", "sagi", "sahehu", "sakika", "sales", "salos", "sami",
	"sana", "sapa", "sapoha", "sarad", "sasut", "sava", "savi", "saza",
	"sazu", "secino", "sefar", "segola", "segu", "sehit", "sejo", "sejuhe",
	"sekafi", "selu", "semat", "semi", "semoso", "sena", "seni", "seno",
	"sepe", "sesina", "sesonil", "sesu", "sesumi", "seto", "setos", "sevo",
	"sewo", "sezaga", "seze", "sezo", "siba", "sibil", "sici", "siho",
	"sijukut", "sikoja", "sikomi", "sili", "silo", "simidu", "sina", "sinadu",
	"sinana", "sira", "siva", "soder", "sodigu", "sodomi", "sodosu", "sofimer",
	"sofut", "soga", "sogipe", "sohem", "soheze", "sohi", "soho", "soja",
	"sojihad", "sojozu", "sojuri", "soka", "sole", "solo", "solu", "somot",
	"somut", "sopipi", "sopod", "sosahe", "sota", "sotavu", "sovi", "sowo",
	"sozim", "sozo", "sozodo", "sozuwi", "sugeva", "sugi", "sugojo", "suham",
	"suhu", "suhune", "suju", "sure", "suredo", "sureza", "suseri", "suti",
	"suvi", "tadi", "tafal", "tahed", "taho", "tajim", "tajova", "taked",
	"taki", "tamesu", "tamo", "tamu", "tanupa", "tape", "tapefu", "tatal",
	"tativor", "tavazo", "tavi", "tavo", "tavom", "tavusi", "tawo", "tazud",
	"tecanu", "tecel", "tecumi", "tefel", "tehovi", "telu", "temi", "temobol",
	"teni", "tepel", "tepinu", "tereli", "teret", "tero", "tesa", "tesel",
	"teva", "tewoval", "teza", "tezoge", "tido", "tifu", "tigu", "tihem",
	"tihomom", "tijami", "tijas", "tijis", "timolil", "titu", "tivi", "tobiha",
	"toce", "tofe", "togo", "tokahit", "tokas", "toki", "tome", "tomu",
	"tonen", "topefu", "torat", "totane", "toterot", "toto", "totuno", "towola",
	"tubaco", "tubasu", "tuco", "tucowu", "tudipu", "tufe", "tufi", "tufid",
	"tujid", "tujo", "tule", "tules", "tumir", "tumud", "tunaket", "tupa",
	"tupavi", "tupe", "tusu", "tuto", "vabine", "vabus", "vacu", "vadova",
	"vago", "vahimi", "vaho", "vajir", "valun", "vama", "vamo", "vamom",
	"vanom", "vapol", "vaso", "vasu", "vatini", "vawe", "vazafe", "veco",
	"veda", "vede", "vediga", "vedo", "vefal", "vefu", "vega", "vegubit",
	"vehe", "veji", "vejo", "vekobos", "venid", "venigu", "veno", "vepa",
	"vepi", "vesan", "vese", "veto", "vewadam", "vewe", "vewim", "veza",
	"vezi", "viba", "vica", "vices", "vicohar", "vicor", "vida", "vifa",
	"vifo", "vifoze", "vijinud", "viko", "vima", "viput", "vira", "viru",
	"visala", "visud", "viver", "viwave", "viwi", "viwun", "viwuse", "vizo",
	"vizuror", "voba", "voca", "voco", "vocuwu", "vodum", "voga", "voge",
	"voki", "vokot", "vokud", "vopazan", "vosapu", "voto", "vovul", "voza",
	"vozu", "vozur", "vufo", "vufut", "vuga", "vugi", "vugo", "vugulet",
	"vuha", "vuhi", "vuhu", "vuja", "vuju", "vukeve", "vukuwa", "vuma",
	"vunefa", "vuneho", "vupe", "vupi", "vuseco", "vute", "vuvin", "vuwima",
	"vuwula", "vuzi", "waba", "wacabun", "wacomel", "wacul", "wafizid", "wafo",
	"wago", "wagu", "waha", "wajod", "walan", "wale", "walin", "walo",
	"walonad", "wama", "wamu", "wamur", "waravo", "warefum", "wasi", "wasoki",
	"watehed", "wati", "wava", "wavipu", "webovu", "webu", "wedi", "wedu",
	"wehar", "wehi", "weho", "wehu", "wehur", "wejeda", "welar", "welofud",
	"weni", "wepa", "wepucet", "wepud", "wera", "weri", "werimul", "wetupu",
	"wewen", "wewobe", "wewukat", "wezi", "wezido", "wezo", "wezoni", "wezosar",
	"wicitul", "wicod", "wicon", "wicu", "widami", "wifalu", "wiga", "wige",
	"wigil", "wigo", "wihabi", "wihejis", "wihu", "wihuku", "wije", "wijide",
	"wilalor", "wima", "wire", "wiro", "wiru", "witor", "witu", "wivas",
	"wizu", "woce", "wogava", "woho", "woja", "woji", "wojovul", "womu",
	"worumu", "wota", "woval", "wowa", "wozu", "wozudun", "wudu", "wufa",
	"wuga", "wuhi", "wuja", "wuje", "wuju", "wuka", "wuku", "wuli",
	"wumo", "wunude", "wupar", "wupede", "wupike", "wupu", "wusis", "wusod",
	"wuvodi", "wuwu", "wuzu", "zacaze", "zafeme", "zafiga", "zafo", "zagofon",
	"zaja", "zajarin", "zaji", "zajo", "zalamo", "zaliven", "zamefu", "zanim",
	"zanodi", "zanore", "zapo", "zarut", "zasi", "zawe", "zawi", "zawo",
	"zawon", "zecos", "zeda", "zefi", "zefu", "zega", "zegina", "zehaban",
	"zeji", "zele", "zeliwu", "zeme", "zenu", "zenuli", "zera", "zerave",
	"zetosa", "zevahon", "zevar", "zevi", "zevove", "zezi", "zezulu", "zibuje",
	"zidugu", "zifafum", "zigoge", "zihika", "ziho", "zije", "zijicu", "zika",
	"zikoce", "zila", "zilud", "zina", "zini", "zipum", "ziri", "zisas",
	"ziti", "ziwedem", "zizi", "zizir", "zizogil", "zizu", "zoba", "zobis",
	"zoce", "zodawe", "zodevu", "zodit", "zofi", "zoga", "zoha", "zohe",
	"zohu", "zoja", "zolo", "zolul", "zoma", "zono", "zope", "zopi",
	"zorar", "zoro", "zovoden", "zowed", "zozifu", "zozun", "zubuwu", "zuco",
	"zude", "zudidi", "zufe", "zufoson", "zugu", "zujer", "zula", "zuli",
	"zumaral", "zumime", "zuvi", "zuvit", "zuvu", "zuwot", "zuwuse", "zuzu",
}

