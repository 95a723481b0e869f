package gazetteer

import "sync"

// FeatureClass is the coarse GeoNames feature category. The zero value is
// NullFeatureClass.
type FeatureClass string

// GeoNames feature classes.
const (
	NullFeatureClass FeatureClass = ""
	FeatureClassA    FeatureClass = "A" // country, state, region
	FeatureClassH    FeatureClass = "H" // stream, lake
	FeatureClassL    FeatureClass = "L" // parks, area
	FeatureClassP    FeatureClass = "P" // city, village
	FeatureClassR    FeatureClass = "R" // road, railroad
	FeatureClassS    FeatureClass = "S" // spot, building, farm
	FeatureClassT    FeatureClass = "T" // mountain, hill, rock
	FeatureClassU    FeatureClass = "U" // undersea
	FeatureClassV    FeatureClass = "V" // forest, heath
)

var featureClassDescriptions = map[FeatureClass]string{
	NullFeatureClass: "not available",
	FeatureClassA:    "Administrative Boundary Features",
	FeatureClassH:    "Hydrographic Features",
	FeatureClassL:    "Area Features",
	FeatureClassP:    "Populated Place Features",
	FeatureClassR:    "Road / Railroad Features",
	FeatureClassS:    "Spot Features",
	FeatureClassT:    "Hypsographic Features",
	FeatureClassU:    "Undersea Features",
	FeatureClassV:    "Vegetation Features",
}

// ParseFeatureClass returns the class for a one-letter code, or
// NullFeatureClass and false when the code is empty or unknown.
func ParseFeatureClass(s string) (FeatureClass, bool) {
	c := FeatureClass(s)
	if c == NullFeatureClass {
		return NullFeatureClass, false
	}
	if _, ok := featureClassDescriptions[c]; !ok {
		return NullFeatureClass, false
	}
	return c, true
}

// Description returns the GeoNames label for the class.
func (c FeatureClass) Description() string {
	return featureClassDescriptions[c]
}

// FeatureCode is the fine-grained GeoNames feature type (e.g. PPL, ADM1).
// The zero value is NullFeatureCode.
type FeatureCode string

// NullFeatureCode marks a record with no (or an unrecognized) feature code.
const NullFeatureCode FeatureCode = ""

type featureCodeInfo struct {
	class FeatureClass
	name  string
}

// featureCodeTable mirrors featureCodes_en.txt from the GeoNames export.
var featureCodeTable = []struct {
	code  FeatureCode
	class FeatureClass
	name  string
}{
	{"ADM1", FeatureClassA, "first-order administrative division"},
	{"ADM1H", FeatureClassA, "historical first-order administrative division"},
	{"ADM2", FeatureClassA, "second-order administrative division"},
	{"ADM2H", FeatureClassA, "historical second-order administrative division"},
	{"ADM3", FeatureClassA, "third-order administrative division"},
	{"ADM3H", FeatureClassA, "historical third-order administrative division"},
	{"ADM4", FeatureClassA, "fourth-order administrative division"},
	{"ADM4H", FeatureClassA, "historical fourth-order administrative division"},
	{"ADM5", FeatureClassA, "fifth-order administrative division"},
	{"ADM5H", FeatureClassA, "historical fifth-order administrative division"},
	{"ADMD", FeatureClassA, "administrative division"},
	{"ADMDH", FeatureClassA, "historical administrative division"},
	{"LTER", FeatureClassA, "leased area"},
	{"PCL", FeatureClassA, "political entity"},
	{"PCLD", FeatureClassA, "dependent political entity"},
	{"PCLF", FeatureClassA, "freely associated state"},
	{"PCLH", FeatureClassA, "historical political entity"},
	{"PCLI", FeatureClassA, "independent political entity"},
	{"PCLIX", FeatureClassA, "section of independent political entity"},
	{"PCLS", FeatureClassA, "semi-independent political entity"},
	{"PRSH", FeatureClassA, "parish"},
	{"TERR", FeatureClassA, "territory"},
	{"ZN", FeatureClassA, "zone"},
	{"ZNB", FeatureClassA, "buffer zone"},
	{"AIRS", FeatureClassH, "seaplane landing area"},
	{"ANCH", FeatureClassH, "anchorage"},
	{"BAY", FeatureClassH, "bay"},
	{"BAYS", FeatureClassH, "bays"},
	{"BGHT", FeatureClassH, "bight(s)"},
	{"BNK", FeatureClassH, "bank(s)"},
	{"BNKR", FeatureClassH, "stream bank"},
	{"BNKX", FeatureClassH, "section of bank"},
	{"BOG", FeatureClassH, "bog(s)"},
	{"CAPG", FeatureClassH, "icecap"},
	{"CHN", FeatureClassH, "channel"},
	{"CHNL", FeatureClassH, "lake channel(s)"},
	{"CHNM", FeatureClassH, "marine channel"},
	{"CHNN", FeatureClassH, "navigation channel"},
	{"CNFL", FeatureClassH, "confluence"},
	{"CNL", FeatureClassH, "canal"},
	{"CNLA", FeatureClassH, "aqueduct"},
	{"CNLB", FeatureClassH, "canal bend"},
	{"CNLD", FeatureClassH, "drainage canal"},
	{"CNLI", FeatureClassH, "irrigation canal"},
	{"CNLN", FeatureClassH, "navigation canal(s)"},
	{"CNLQ", FeatureClassH, "abandoned canal"},
	{"CNLSB", FeatureClassH, "underground irrigation canal(s)"},
	{"CNLX", FeatureClassH, "section of canal"},
	{"COVE", FeatureClassH, "cove(s)"},
	{"CRKT", FeatureClassH, "tidal creek(s)"},
	{"CRNT", FeatureClassH, "current"},
	{"CUTF", FeatureClassH, "cutoff"},
	{"DCK", FeatureClassH, "dock(s)"},
	{"DCKB", FeatureClassH, "docking basin"},
	{"DOMG", FeatureClassH, "icecap dome"},
	{"DPRG", FeatureClassH, "icecap depression"},
	{"DTCH", FeatureClassH, "ditch"},
	{"DTCHD", FeatureClassH, "drainage ditch"},
	{"DTCHI", FeatureClassH, "irrigation ditch"},
	{"DTCHM", FeatureClassH, "ditch mouth(s)"},
	{"ESTY", FeatureClassH, "estuary"},
	{"FISH", FeatureClassH, "fishing area"},
	{"FJD", FeatureClassH, "fjord"},
	{"FJDS", FeatureClassH, "fjords"},
	{"FLLS", FeatureClassH, "waterfall(s)"},
	{"FLLSX", FeatureClassH, "section of waterfall(s)"},
	{"FLTM", FeatureClassH, "mud flat(s)"},
	{"FLTT", FeatureClassH, "tidal flat(s)"},
	{"GLCR", FeatureClassH, "glacier(s)"},
	{"GULF", FeatureClassH, "gulf"},
	{"GYSR", FeatureClassH, "geyser"},
	{"HBR", FeatureClassH, "harbor(s)"},
	{"HBRX", FeatureClassH, "section of harbor"},
	{"INLT", FeatureClassH, "inlet"},
	{"INLTQ", FeatureClassH, "former inlet"},
	{"LBED", FeatureClassH, "lake bed(s)"},
	{"LGN", FeatureClassH, "lagoon"},
	{"LGNS", FeatureClassH, "lagoons"},
	{"LGNX", FeatureClassH, "section of lagoon"},
	{"LK", FeatureClassH, "lake"},
	{"LKC", FeatureClassH, "crater lake"},
	{"LKI", FeatureClassH, "intermittent lake"},
	{"LKN", FeatureClassH, "salt lake"},
	{"LKNI", FeatureClassH, "intermittent salt lake"},
	{"LKO", FeatureClassH, "oxbow lake"},
	{"LKOI", FeatureClassH, "intermittent oxbow lake"},
	{"LKS", FeatureClassH, "lakes"},
	{"LKSB", FeatureClassH, "underground lake"},
	{"LKSC", FeatureClassH, "crater lakes"},
	{"LKSI", FeatureClassH, "intermittent lakes"},
	{"LKSN", FeatureClassH, "salt lakes"},
	{"LKSNI", FeatureClassH, "intermittent salt lakes"},
	{"LKX", FeatureClassH, "section of lake"},
	{"MFGN", FeatureClassH, "salt evaporation ponds"},
	{"MGV", FeatureClassH, "mangrove swamp"},
	{"MOOR", FeatureClassH, "moor(s)"},
	{"MRSH", FeatureClassH, "marsh(es)"},
	{"MRSHN", FeatureClassH, "salt marsh"},
	{"NRWS", FeatureClassH, "narrows"},
	{"OCN", FeatureClassH, "ocean"},
	{"OVF", FeatureClassH, "overfalls"},
	{"PND", FeatureClassH, "pond"},
	{"PNDI", FeatureClassH, "intermittent pond"},
	{"PNDN", FeatureClassH, "salt pond"},
	{"PNDNI", FeatureClassH, "intermittent salt pond(s)"},
	{"PNDS", FeatureClassH, "ponds"},
	{"PNDSF", FeatureClassH, "fishponds"},
	{"PNDSI", FeatureClassH, "intermittent ponds"},
	{"PNDSN", FeatureClassH, "salt ponds"},
	{"POOL", FeatureClassH, "pool(s)"},
	{"POOLI", FeatureClassH, "intermittent pool"},
	{"RCH", FeatureClassH, "reach"},
	{"RDGG", FeatureClassH, "icecap ridge"},
	{"RDST", FeatureClassH, "roadstead"},
	{"RF", FeatureClassH, "reef(s)"},
	{"RFC", FeatureClassH, "coral reef(s)"},
	{"RFX", FeatureClassH, "section of reef"},
	{"RPDS", FeatureClassH, "rapids"},
	{"RSV", FeatureClassH, "reservoir(s)"},
	{"RSVI", FeatureClassH, "intermittent reservoir"},
	{"RSVT", FeatureClassH, "water tank"},
	{"RVN", FeatureClassH, "ravine(s)"},
	{"SBKH", FeatureClassH, "sabkha(s)"},
	{"SD", FeatureClassH, "sound"},
	{"SEA", FeatureClassH, "sea"},
	{"SHOL", FeatureClassH, "shoal(s)"},
	{"SILL", FeatureClassH, "sill"},
	{"SPNG", FeatureClassH, "spring(s)"},
	{"SPNS", FeatureClassH, "sulphur spring(s)"},
	{"SPNT", FeatureClassH, "hot spring(s)"},
	{"STM", FeatureClassH, "stream"},
	{"STMA", FeatureClassH, "anabranch"},
	{"STMB", FeatureClassH, "stream bend"},
	{"STMC", FeatureClassH, "canalized stream"},
	{"STMD", FeatureClassH, "distributary(-ies)"},
	{"STMH", FeatureClassH, "headwaters"},
	{"STMI", FeatureClassH, "intermittent stream"},
	{"STMIX", FeatureClassH, "section of intermittent stream"},
	{"STMM", FeatureClassH, "stream mouth(s)"},
	{"STMQ", FeatureClassH, "abandoned watercourse"},
	{"STMS", FeatureClassH, "streams"},
	{"STMSB", FeatureClassH, "lost river"},
	{"STMX", FeatureClassH, "section of stream"},
	{"STRT", FeatureClassH, "strait"},
	{"SWMP", FeatureClassH, "swamp"},
	{"SYSI", FeatureClassH, "irrigation system"},
	{"TNLC", FeatureClassH, "canal tunnel"},
	{"WAD", FeatureClassH, "wadi"},
	{"WADB", FeatureClassH, "wadi bend"},
	{"WADJ", FeatureClassH, "wadi junction"},
	{"WADM", FeatureClassH, "wadi mouth"},
	{"WADS", FeatureClassH, "wadies"},
	{"WADX", FeatureClassH, "section of wadi"},
	{"WHRL", FeatureClassH, "whirlpool"},
	{"WLL", FeatureClassH, "well"},
	{"WLLQ", FeatureClassH, "abandoned well"},
	{"WLLS", FeatureClassH, "wells"},
	{"WTLD", FeatureClassH, "wetland"},
	{"WTLDI", FeatureClassH, "intermittent wetland"},
	{"WTRC", FeatureClassH, "watercourse"},
	{"WTRH", FeatureClassH, "waterhole(s)"},
	{"AGRC", FeatureClassL, "agricultural colony"},
	{"AMUS", FeatureClassL, "amusement park"},
	{"AREA", FeatureClassL, "area"},
	{"BSND", FeatureClassL, "drainage basin"},
	{"BSNP", FeatureClassL, "petroleum basin"},
	{"BTL", FeatureClassL, "battlefield"},
	{"CLG", FeatureClassL, "clearing"},
	{"CMN", FeatureClassL, "common"},
	{"CNS", FeatureClassL, "concession area"},
	{"COLF", FeatureClassL, "coalfield"},
	{"CONT", FeatureClassL, "continent"},
	{"CST", FeatureClassL, "coast"},
	{"CTRB", FeatureClassL, "business center"},
	{"DEVH", FeatureClassL, "housing development"},
	{"FLD", FeatureClassL, "field(s)"},
	{"FLDI", FeatureClassL, "irrigated field(s)"},
	{"GASF", FeatureClassL, "gasfield"},
	{"GRAZ", FeatureClassL, "grazing area"},
	{"GVL", FeatureClassL, "gravel area"},
	{"INDS", FeatureClassL, "industrial area"},
	{"LAND", FeatureClassL, "arctic land"},
	{"LCTY", FeatureClassL, "locality"},
	{"MILB", FeatureClassL, "military base"},
	{"MNA", FeatureClassL, "mining area"},
	{"MVA", FeatureClassL, "maneuver area"},
	{"NVB", FeatureClassL, "naval base"},
	{"OAS", FeatureClassL, "oasis(-es)"},
	{"OILF", FeatureClassL, "oilfield"},
	{"PEAT", FeatureClassL, "peat cutting area"},
	{"PRK", FeatureClassL, "park"},
	{"PRT", FeatureClassL, "port"},
	{"QCKS", FeatureClassL, "quicksand"},
	{"RES", FeatureClassL, "reserve"},
	{"RESA", FeatureClassL, "agricultural reserve"},
	{"RESF", FeatureClassL, "forest reserve"},
	{"RESH", FeatureClassL, "hunting reserve"},
	{"RESN", FeatureClassL, "nature reserve"},
	{"RESP", FeatureClassL, "palm tree reserve"},
	{"RESV", FeatureClassL, "reservation"},
	{"RESW", FeatureClassL, "wildlife reserve"},
	{"RGN", FeatureClassL, "region"},
	{"RGNE", FeatureClassL, "economic region"},
	{"RGNH", FeatureClassL, "historical region"},
	{"RGNL", FeatureClassL, "lake region"},
	{"RNGA", FeatureClassL, "artillery range"},
	{"SALT", FeatureClassL, "salt area"},
	{"SNOW", FeatureClassL, "snowfield"},
	{"TRB", FeatureClassL, "tribal area"},
	{"PPL", FeatureClassP, "populated place"},
	{"PPLA", FeatureClassP, "seat of a first-order administrative division"},
	{"PPLA2", FeatureClassP, "seat of a second-order administrative division"},
	{"PPLA3", FeatureClassP, "seat of a third-order administrative division"},
	{"PPLA4", FeatureClassP, "seat of a fourth-order administrative division"},
	{"PPLA5", FeatureClassP, "seat of a fifth-order administrative division"},
	{"PPLC", FeatureClassP, "capital of a political entity"},
	{"PPLCH", FeatureClassP, "historical capital of a political entity"},
	{"PPLF", FeatureClassP, "farm village"},
	{"PPLG", FeatureClassP, "seat of government of a political entity"},
	{"PPLH", FeatureClassP, "historical populated place"},
	{"PPLL", FeatureClassP, "populated locality"},
	{"PPLQ", FeatureClassP, "abandoned populated place"},
	{"PPLR", FeatureClassP, "religious populated place"},
	{"PPLS", FeatureClassP, "populated places"},
	{"PPLW", FeatureClassP, "destroyed populated place"},
	{"PPLX", FeatureClassP, "section of populated place"},
	{"STLMT", FeatureClassP, "israeli settlement"},
	{"CSWY", FeatureClassR, "causeway"},
	{"OILP", FeatureClassR, "oil pipeline"},
	{"PRMN", FeatureClassR, "promenade"},
	{"PTGE", FeatureClassR, "portage"},
	{"RD", FeatureClassR, "road"},
	{"RDA", FeatureClassR, "ancient road"},
	{"RDB", FeatureClassR, "road bend"},
	{"RDCUT", FeatureClassR, "road cut"},
	{"RDJCT", FeatureClassR, "road junction"},
	{"RJCT", FeatureClassR, "railroad junction"},
	{"RR", FeatureClassR, "railroad"},
	{"RRQ", FeatureClassR, "abandoned railroad"},
	{"RTE", FeatureClassR, "caravan route"},
	{"RYD", FeatureClassR, "railroad yard"},
	{"ST", FeatureClassR, "street"},
	{"STKR", FeatureClassR, "stock route"},
	{"TNL", FeatureClassR, "tunnel"},
	{"TNLN", FeatureClassR, "natural tunnel"},
	{"TNLRD", FeatureClassR, "road tunnel"},
	{"TNLRR", FeatureClassR, "railroad tunnel"},
	{"TNLS", FeatureClassR, "tunnels"},
	{"TRL", FeatureClassR, "trail"},
	{"ADMF", FeatureClassS, "administrative facility"},
	{"AGRF", FeatureClassS, "agricultural facility"},
	{"AIRB", FeatureClassS, "airbase"},
	{"AIRF", FeatureClassS, "airfield"},
	{"AIRH", FeatureClassS, "heliport"},
	{"AIRP", FeatureClassS, "airport"},
	{"AIRQ", FeatureClassS, "abandoned airfield"},
	{"AIRT", FeatureClassS, "terminal"},
	{"AMTH", FeatureClassS, "amphitheater"},
	{"ANS", FeatureClassS, "archaeological/prehistoric site"},
	{"AQC", FeatureClassS, "aquaculture facility"},
	{"ARCH", FeatureClassS, "arch"},
	{"ARCHV", FeatureClassS, "archive"},
	{"ART", FeatureClassS, "piece of art"},
	{"ASTR", FeatureClassS, "astronomical station"},
	{"ASYL", FeatureClassS, "asylum"},
	{"ATHF", FeatureClassS, "athletic field"},
	{"ATM", FeatureClassS, "automatic teller machine"},
	{"BANK", FeatureClassS, "bank"},
	{"BCN", FeatureClassS, "beacon"},
	{"BDG", FeatureClassS, "bridge"},
	{"BDGQ", FeatureClassS, "ruined bridge"},
	{"BLDA", FeatureClassS, "apartment building"},
	{"BLDG", FeatureClassS, "building(s)"},
	{"BLDO", FeatureClassS, "office building"},
	{"BP", FeatureClassS, "boundary marker"},
	{"BRKS", FeatureClassS, "barracks"},
	{"BRKW", FeatureClassS, "breakwater"},
	{"BSTN", FeatureClassS, "baling station"},
	{"BTYD", FeatureClassS, "boatyard"},
	{"BUR", FeatureClassS, "burial cave(s)"},
	{"BUSTN", FeatureClassS, "bus station"},
	{"BUSTP", FeatureClassS, "bus stop"},
	{"CARN", FeatureClassS, "cairn"},
	{"CAVE", FeatureClassS, "cave(s)"},
	{"CH", FeatureClassS, "church"},
	{"CMP", FeatureClassS, "camp(s)"},
	{"CMPL", FeatureClassS, "logging camp"},
	{"CMPLA", FeatureClassS, "labor camp"},
	{"CMPMN", FeatureClassS, "mining camp"},
	{"CMPO", FeatureClassS, "oil camp"},
	{"CMPQ", FeatureClassS, "abandoned camp"},
	{"CMPRF", FeatureClassS, "refugee camp"},
	{"CMTY", FeatureClassS, "cemetery"},
	{"COMC", FeatureClassS, "communication center"},
	{"CRRL", FeatureClassS, "corral(s)"},
	{"CSNO", FeatureClassS, "casino"},
	{"CSTL", FeatureClassS, "castle"},
	{"CSTM", FeatureClassS, "customs house"},
	{"CTHSE", FeatureClassS, "courthouse"},
	{"CTRA", FeatureClassS, "atomic center"},
	{"CTRCM", FeatureClassS, "community center"},
	{"CTRF", FeatureClassS, "facility center"},
	{"CTRM", FeatureClassS, "medical center"},
	{"CTRR", FeatureClassS, "religious center"},
	{"CTRS", FeatureClassS, "space center"},
	{"CVNT", FeatureClassS, "convent"},
	{"DAM", FeatureClassS, "dam"},
	{"DAMQ", FeatureClassS, "ruined dam"},
	{"DAMSB", FeatureClassS, "sub-surface dam"},
	{"DARY", FeatureClassS, "dairy"},
	{"DCKD", FeatureClassS, "dry dock"},
	{"DCKY", FeatureClassS, "dockyard"},
	{"DIKE", FeatureClassS, "dike"},
	{"DIP", FeatureClassS, "diplomatic facility"},
	{"DPOF", FeatureClassS, "fuel depot"},
	{"EST", FeatureClassS, "estate(s)"},
	{"ESTO", FeatureClassS, "oil palm plantation"},
	{"ESTR", FeatureClassS, "rubber plantation"},
	{"ESTSG", FeatureClassS, "sugar plantation"},
	{"ESTT", FeatureClassS, "tea plantation"},
	{"ESTX", FeatureClassS, "section of estate"},
	{"FCL", FeatureClassS, "facility"},
	{"FNDY", FeatureClassS, "foundry"},
	{"FRM", FeatureClassS, "farm"},
	{"FRMQ", FeatureClassS, "abandoned farm"},
	{"FRMS", FeatureClassS, "farms"},
	{"FRMT", FeatureClassS, "farmstead"},
	{"FT", FeatureClassS, "fort"},
	{"FY", FeatureClassS, "ferry"},
	{"FYT", FeatureClassS, "ferry terminal"},
	{"GATE", FeatureClassS, "gate"},
	{"GDN", FeatureClassS, "garden(s)"},
	{"GHAT", FeatureClassS, "ghat"},
	{"GHSE", FeatureClassS, "guest house"},
	{"GOSP", FeatureClassS, "gas-oil separator plant"},
	{"GOVL", FeatureClassS, "local government office"},
	{"GRVE", FeatureClassS, "grave"},
	{"HERM", FeatureClassS, "hermitage"},
	{"HLT", FeatureClassS, "halting place"},
	{"HMSD", FeatureClassS, "homestead"},
	{"HSE", FeatureClassS, "house(s)"},
	{"HSEC", FeatureClassS, "country house"},
	{"HSP", FeatureClassS, "hospital"},
	{"HSPC", FeatureClassS, "clinic"},
	{"HSPD", FeatureClassS, "dispensary"},
	{"HSPL", FeatureClassS, "leprosarium"},
	{"HSTS", FeatureClassS, "historical site"},
	{"HTL", FeatureClassS, "hotel"},
	{"HUT", FeatureClassS, "hut"},
	{"HUTS", FeatureClassS, "huts"},
	{"INSM", FeatureClassS, "military installation"},
	{"ITTR", FeatureClassS, "research institute"},
	{"JTY", FeatureClassS, "jetty"},
	{"LDNG", FeatureClassS, "landing"},
	{"LEPC", FeatureClassS, "leper colony"},
	{"LIBR", FeatureClassS, "library"},
	{"LNDF", FeatureClassS, "landfill"},
	{"LOCK", FeatureClassS, "lock(s)"},
	{"LTHSE", FeatureClassS, "lighthouse"},
	{"MALL", FeatureClassS, "mall"},
	{"MAR", FeatureClassS, "marina"},
	{"MFG", FeatureClassS, "factory"},
	{"MFGB", FeatureClassS, "brewery"},
	{"MFGC", FeatureClassS, "cannery"},
	{"MFGCU", FeatureClassS, "copper works"},
	{"MFGLM", FeatureClassS, "limekiln"},
	{"MFGM", FeatureClassS, "munitions plant"},
	{"MFGPH", FeatureClassS, "phosphate works"},
	{"MFGQ", FeatureClassS, "abandoned factory"},
	{"MFGSG", FeatureClassS, "sugar refinery"},
	{"MKT", FeatureClassS, "market"},
	{"ML", FeatureClassS, "mill(s)"},
	{"MLM", FeatureClassS, "ore treatment plant"},
	{"MLO", FeatureClassS, "olive oil mill"},
	{"MLSG", FeatureClassS, "sugar mill"},
	{"MLSGQ", FeatureClassS, "former sugar mill"},
	{"MLSW", FeatureClassS, "sawmill"},
	{"MLWND", FeatureClassS, "windmill"},
	{"MLWTR", FeatureClassS, "water mill"},
	{"MN", FeatureClassS, "mine(s)"},
	{"MNAU", FeatureClassS, "gold mine(s)"},
	{"MNC", FeatureClassS, "coal mine(s)"},
	{"MNCR", FeatureClassS, "chrome mine(s)"},
	{"MNCU", FeatureClassS, "copper mine(s)"},
	{"MNFE", FeatureClassS, "iron mine(s)"},
	{"MNMT", FeatureClassS, "monument"},
	{"MNN", FeatureClassS, "salt mine(s)"},
	{"MNQ", FeatureClassS, "abandoned mine"},
	{"MNQR", FeatureClassS, "quarry(-ies)"},
	{"MOLE", FeatureClassS, "mole"},
	{"MSQE", FeatureClassS, "mosque"},
	{"MSSN", FeatureClassS, "mission"},
	{"MSSNQ", FeatureClassS, "abandoned mission"},
	{"MSTY", FeatureClassS, "monastery"},
	{"MTRO", FeatureClassS, "metro station"},
	{"MUS", FeatureClassS, "museum"},
	{"NOV", FeatureClassS, "novitiate"},
	{"NSY", FeatureClassS, "nursery(-ies)"},
	{"OBPT", FeatureClassS, "observation point"},
	{"OBS", FeatureClassS, "observatory"},
	{"OBSR", FeatureClassS, "radio observatory"},
	{"OILJ", FeatureClassS, "oil pipeline junction"},
	{"OILQ", FeatureClassS, "abandoned oil well"},
	{"OILR", FeatureClassS, "oil refinery"},
	{"OILT", FeatureClassS, "tank farm"},
	{"OILW", FeatureClassS, "oil well"},
	{"OPRA", FeatureClassS, "opera house"},
	{"PAL", FeatureClassS, "palace"},
	{"PGDA", FeatureClassS, "pagoda"},
	{"PIER", FeatureClassS, "pier"},
	{"PKLT", FeatureClassS, "parking lot"},
	{"PMPO", FeatureClassS, "oil pumping station"},
	{"PMPW", FeatureClassS, "water pumping station"},
	{"PO", FeatureClassS, "post office"},
	{"PP", FeatureClassS, "police post"},
	{"PPQ", FeatureClassS, "abandoned police post"},
	{"PRKGT", FeatureClassS, "park gate"},
	{"PRKHQ", FeatureClassS, "park headquarters"},
	{"PRN", FeatureClassS, "prison"},
	{"PRNJ", FeatureClassS, "reformatory"},
	{"PRNQ", FeatureClassS, "abandoned prison"},
	{"PS", FeatureClassS, "power station"},
	{"PSH", FeatureClassS, "hydroelectric power station"},
	{"PSN", FeatureClassS, "nuclear power station"},
	{"PSTB", FeatureClassS, "border post"},
	{"PSTC", FeatureClassS, "customs post"},
	{"PSTP", FeatureClassS, "patrol post"},
	{"PYR", FeatureClassS, "pyramid"},
	{"PYRS", FeatureClassS, "pyramids"},
	{"QUAY", FeatureClassS, "quay"},
	{"RDCR", FeatureClassS, "traffic circle"},
	{"RDIN", FeatureClassS, "intersection"},
	{"RECG", FeatureClassS, "golf course"},
	{"RECR", FeatureClassS, "racetrack"},
	{"REST", FeatureClassS, "restaurant"},
	{"RET", FeatureClassS, "store"},
	{"RHSE", FeatureClassS, "resthouse"},
	{"RKRY", FeatureClassS, "rookery"},
	{"RLG", FeatureClassS, "religious site"},
	{"RLGR", FeatureClassS, "retreat"},
	{"RNCH", FeatureClassS, "ranch(es)"},
	{"RSD", FeatureClassS, "railroad siding"},
	{"RSGNL", FeatureClassS, "railroad signal"},
	{"RSRT", FeatureClassS, "resort"},
	{"RSTN", FeatureClassS, "railroad station"},
	{"RSTNQ", FeatureClassS, "abandoned railroad station"},
	{"RSTP", FeatureClassS, "railroad stop"},
	{"RSTPQ", FeatureClassS, "abandoned railroad stop"},
	{"RUIN", FeatureClassS, "ruin(s)"},
	{"SCH", FeatureClassS, "school"},
	{"SCHA", FeatureClassS, "agricultural school"},
	{"SCHC", FeatureClassS, "college"},
	{"SCHL", FeatureClassS, "language school"},
	{"SCHM", FeatureClassS, "military school"},
	{"SCHN", FeatureClassS, "maritime school"},
	{"SCHT", FeatureClassS, "technical school"},
	{"SECP", FeatureClassS, "State Exam Prep Centre"},
	{"SHPF", FeatureClassS, "sheepfold"},
	{"SHRN", FeatureClassS, "shrine"},
	{"SHSE", FeatureClassS, "storehouse"},
	{"SLCE", FeatureClassS, "sluice"},
	{"SNTR", FeatureClassS, "sanatorium"},
	{"SPA", FeatureClassS, "spa"},
	{"SPLY", FeatureClassS, "water supply"},
	{"SQR", FeatureClassS, "square"},
	{"STBL", FeatureClassS, "stable"},
	{"STDM", FeatureClassS, "stadium"},
	{"STNB", FeatureClassS, "scientific research base"},
	{"STNC", FeatureClassS, "coast guard station"},
	{"STNE", FeatureClassS, "experiment station"},
	{"STNF", FeatureClassS, "forest station"},
	{"STNI", FeatureClassS, "inspection station"},
	{"STNM", FeatureClassS, "meteorological station"},
	{"STNR", FeatureClassS, "radio station"},
	{"STNS", FeatureClassS, "satellite station"},
	{"STNW", FeatureClassS, "whaling station"},
	{"STPS", FeatureClassS, "steps"},
	{"SWT", FeatureClassS, "sewage treatment plant"},
	{"SYG", FeatureClassS, "synagogue"},
	{"THTR", FeatureClassS, "theater"},
	{"TMB", FeatureClassS, "tomb(s)"},
	{"TMPL", FeatureClassS, "temple(s)"},
	{"TNKD", FeatureClassS, "cattle dipping tank"},
	{"TOLL", FeatureClassS, "toll gate/barrier"},
	{"TOWR", FeatureClassS, "tower"},
	{"TRAM", FeatureClassS, "tram"},
	{"TRANT", FeatureClassS, "transit terminal"},
	{"TRIG", FeatureClassS, "triangulation station"},
	{"TRMO", FeatureClassS, "oil pipeline terminal"},
	{"TWO", FeatureClassS, "temp work office"},
	{"UNIP", FeatureClassS, "university prep school"},
	{"UNIV", FeatureClassS, "university"},
	{"USGE", FeatureClassS, "united states government establishment"},
	{"VETF", FeatureClassS, "veterinary facility"},
	{"WALL", FeatureClassS, "wall"},
	{"WALLA", FeatureClassS, "ancient wall"},
	{"WEIR", FeatureClassS, "weir(s)"},
	{"WHRF", FeatureClassS, "wharf(-ves)"},
	{"WRCK", FeatureClassS, "wreck"},
	{"WTRW", FeatureClassS, "waterworks"},
	{"ZNF", FeatureClassS, "free trade zone"},
	{"ZOO", FeatureClassS, "zoo"},
	{"ASPH", FeatureClassT, "asphalt lake"},
	{"ATOL", FeatureClassT, "atoll(s)"},
	{"BAR", FeatureClassT, "bar"},
	{"BCH", FeatureClassT, "beach"},
	{"BCHS", FeatureClassT, "beaches"},
	{"BDLD", FeatureClassT, "badlands"},
	{"BLDR", FeatureClassT, "boulder field"},
	{"BLHL", FeatureClassT, "blowhole(s)"},
	{"BLOW", FeatureClassT, "blowout(s)"},
	{"BNCH", FeatureClassT, "bench"},
	{"BUTE", FeatureClassT, "butte(s)"},
	{"CAPE", FeatureClassT, "cape"},
	{"CFT", FeatureClassT, "cleft(s)"},
	{"CLDA", FeatureClassT, "caldera"},
	{"CLF", FeatureClassT, "cliff(s)"},
	{"CNYN", FeatureClassT, "canyon"},
	{"CONE", FeatureClassT, "cone(s)"},
	{"CRDR", FeatureClassT, "corridor"},
	{"CRQ", FeatureClassT, "cirque"},
	{"CRQS", FeatureClassT, "cirques"},
	{"CRTR", FeatureClassT, "crater(s)"},
	{"CUET", FeatureClassT, "cuesta(s)"},
	{"DLTA", FeatureClassT, "delta"},
	{"DPR", FeatureClassT, "depression(s)"},
	{"DSRT", FeatureClassT, "desert"},
	{"DUNE", FeatureClassT, "dune(s)"},
	{"DVD", FeatureClassT, "divide"},
	{"ERG", FeatureClassT, "sandy desert"},
	{"FAN", FeatureClassT, "fan(s)"},
	{"FORD", FeatureClassT, "ford"},
	{"FSR", FeatureClassT, "fissure"},
	{"GAP", FeatureClassT, "gap"},
	{"GRGE", FeatureClassT, "gorge(s)"},
	{"HDLD", FeatureClassT, "headland"},
	{"HLL", FeatureClassT, "hill"},
	{"HLLS", FeatureClassT, "hills"},
	{"HMCK", FeatureClassT, "hammock(s)"},
	{"HMK", FeatureClassT, "mound(s)"},
	{"INTF", FeatureClassT, "interfluve"},
	{"ISL", FeatureClassT, "island"},
	{"ISLET", FeatureClassT, "islet"},
	{"ISLF", FeatureClassT, "artificial island"},
	{"ISLM", FeatureClassT, "mangrove island"},
	{"ISLS", FeatureClassT, "islands"},
	{"ISLT", FeatureClassT, "land-tied island"},
	{"ISLX", FeatureClassT, "section of island"},
	{"ISTH", FeatureClassT, "isthmus"},
	{"KRST", FeatureClassT, "karst area"},
	{"LAVA", FeatureClassT, "lava area"},
	{"LEV", FeatureClassT, "levee"},
	{"MESA", FeatureClassT, "mesa(s)"},
	{"MND", FeatureClassT, "mound(s)"},
	{"MRN", FeatureClassT, "moraine"},
	{"MT", FeatureClassT, "mountain"},
	{"MTS", FeatureClassT, "mountains"},
	{"NKM", FeatureClassT, "meander neck"},
	{"NTK", FeatureClassT, "nunatak"},
	{"NTKS", FeatureClassT, "nunataks"},
	{"PAN", FeatureClassT, "pan"},
	{"PANS", FeatureClassT, "pans"},
	{"PASS", FeatureClassT, "pass"},
	{"PEN", FeatureClassT, "peninsula"},
	{"PENX", FeatureClassT, "section of peninsula"},
	{"PK", FeatureClassT, "peak"},
	{"PKS", FeatureClassT, "peaks"},
	{"PLAT", FeatureClassT, "plateau"},
	{"PLATX", FeatureClassT, "section of plateau"},
	{"PLDR", FeatureClassT, "polder"},
	{"PLN", FeatureClassT, "plain(s)"},
	{"PLNX", FeatureClassT, "section of plain"},
	{"PROM", FeatureClassT, "promontory(-ies)"},
	{"PT", FeatureClassT, "point"},
	{"PTS", FeatureClassT, "points"},
	{"RDGB", FeatureClassT, "beach ridge"},
	{"RDGE", FeatureClassT, "ridge(s)"},
	{"REG", FeatureClassT, "stony desert"},
	{"RK", FeatureClassT, "rock"},
	{"RKFL", FeatureClassT, "rockfall"},
	{"RKS", FeatureClassT, "rocks"},
	{"SAND", FeatureClassT, "sand area"},
	{"SBED", FeatureClassT, "dry stream bed"},
	{"SCRP", FeatureClassT, "escarpment"},
	{"SDL", FeatureClassT, "saddle"},
	{"SHOR", FeatureClassT, "shore"},
	{"SINK", FeatureClassT, "sinkhole"},
	{"SLID", FeatureClassT, "slide"},
	{"SLP", FeatureClassT, "slope(s)"},
	{"SPIT", FeatureClassT, "spit"},
	{"SPUR", FeatureClassT, "spur(s)"},
	{"TAL", FeatureClassT, "talus slope"},
	{"TRGD", FeatureClassT, "interdune trough(s)"},
	{"TRR", FeatureClassT, "terrace"},
	{"UPLD", FeatureClassT, "upland"},
	{"VAL", FeatureClassT, "valley"},
	{"VALG", FeatureClassT, "hanging valley"},
	{"VALS", FeatureClassT, "valleys"},
	{"VALX", FeatureClassT, "section of valley"},
	{"VLC", FeatureClassT, "volcano"},
	{"APNU", FeatureClassU, "apron"},
	{"ARCU", FeatureClassU, "arch"},
	{"ARRU", FeatureClassU, "arrugado"},
	{"BDLU", FeatureClassU, "borderland"},
	{"BKSU", FeatureClassU, "banks"},
	{"BNKU", FeatureClassU, "bank"},
	{"BSNU", FeatureClassU, "basin"},
	{"CDAU", FeatureClassU, "cordillera"},
	{"CNSU", FeatureClassU, "canyons"},
	{"CNYU", FeatureClassU, "canyon"},
	{"CRSU", FeatureClassU, "continental rise"},
	{"DEPU", FeatureClassU, "deep"},
	{"EDGU", FeatureClassU, "shelf edge"},
	{"ESCU", FeatureClassU, "escarpment (or scarp)"},
	{"FANU", FeatureClassU, "fan"},
	{"FLTU", FeatureClassU, "flat"},
	{"FRZU", FeatureClassU, "fracture zone"},
	{"FURU", FeatureClassU, "furrow"},
	{"GAPU", FeatureClassU, "gap"},
	{"GLYU", FeatureClassU, "gully"},
	{"HLLU", FeatureClassU, "hill"},
	{"HLSU", FeatureClassU, "hills"},
	{"HOLU", FeatureClassU, "hole"},
	{"KNLU", FeatureClassU, "knoll"},
	{"KNSU", FeatureClassU, "knolls"},
	{"LDGU", FeatureClassU, "ledge"},
	{"LEVU", FeatureClassU, "levee"},
	{"MESU", FeatureClassU, "mesa"},
	{"MNDU", FeatureClassU, "mound"},
	{"MOTU", FeatureClassU, "moat"},
	{"MTU", FeatureClassU, "mountain"},
	{"PKSU", FeatureClassU, "peaks"},
	{"PKU", FeatureClassU, "peak"},
	{"PLNU", FeatureClassU, "plain"},
	{"PLTU", FeatureClassU, "plateau"},
	{"PNLU", FeatureClassU, "pinnacle"},
	{"PRVU", FeatureClassU, "province"},
	{"RDGU", FeatureClassU, "ridge"},
	{"RDSU", FeatureClassU, "ridges"},
	{"RFSU", FeatureClassU, "reefs"},
	{"RFU", FeatureClassU, "reef"},
	{"RISU", FeatureClassU, "rise"},
	{"SCNU", FeatureClassU, "seachannel"},
	{"SCSU", FeatureClassU, "seachannels"},
	{"SDLU", FeatureClassU, "saddle"},
	{"SHFU", FeatureClassU, "shelf"},
	{"SHLU", FeatureClassU, "shoal"},
	{"SHSU", FeatureClassU, "shoals"},
	{"SHVU", FeatureClassU, "shelf valley"},
	{"SILU", FeatureClassU, "sill"},
	{"SLPU", FeatureClassU, "slope"},
	{"SMSU", FeatureClassU, "seamounts"},
	{"SMU", FeatureClassU, "seamount"},
	{"SPRU", FeatureClassU, "spur"},
	{"TERU", FeatureClassU, "terrace"},
	{"TMSU", FeatureClassU, "tablemounts (or guyots)"},
	{"TMTU", FeatureClassU, "tablemount (or guyot)"},
	{"TNGU", FeatureClassU, "tongue"},
	{"TRGU", FeatureClassU, "trough"},
	{"TRNU", FeatureClassU, "trench"},
	{"VALU", FeatureClassU, "valley"},
	{"VLSU", FeatureClassU, "valleys"},
	{"BUSH", FeatureClassV, "bush(es)"},
	{"CULT", FeatureClassV, "cultivated area"},
	{"FRST", FeatureClassV, "forest(s)"},
	{"FRSTF", FeatureClassV, "fossilized forest"},
	{"GROVE", FeatureClassV, "grove"},
	{"GRSLD", FeatureClassV, "grassland"},
	{"GRVC", FeatureClassV, "coconut grove"},
	{"GRVO", FeatureClassV, "olive grove"},
	{"GRVP", FeatureClassV, "palm grove"},
	{"GRVPN", FeatureClassV, "pine grove"},
	{"HTH", FeatureClassV, "heath"},
	{"MDW", FeatureClassV, "meadow(s)"},
	{"OCH", FeatureClassV, "orchard(s)"},
	{"SCRB", FeatureClassV, "scrubland"},
	{"TREE", FeatureClassV, "tree(s)"},
	{"TUND", FeatureClassV, "tundra"},
	{"VIN", FeatureClassV, "vineyard"},
	{"VINS", FeatureClassV, "vineyards"},
}

var featureCodes = sync.OnceValue(func() map[FeatureCode]featureCodeInfo {
	m := make(map[FeatureCode]featureCodeInfo, len(featureCodeTable))
	for _, fc := range featureCodeTable {
		m[fc.code] = featureCodeInfo{class: fc.class, name: fc.name}
	}
	return m
})

// ParseFeatureCode returns the feature code for s, or NullFeatureCode and
// false when s is empty or not a GeoNames code.
func ParseFeatureCode(s string) (FeatureCode, bool) {
	c := FeatureCode(s)
	if _, ok := featureCodes()[c]; !ok {
		return NullFeatureCode, false
	}
	return c, true
}

// Class returns the feature class the code belongs to.
func (c FeatureCode) Class() FeatureClass {
	return featureCodes()[c].class
}

// Description returns the GeoNames short name of the code, or
// "not available" for NullFeatureCode.
func (c FeatureCode) Description() string {
	if c == NullFeatureCode {
		return "not available"
	}
	return featureCodes()[c].name
}

// IsPopulatedPlace reports whether the code is a class P feature.
func (c FeatureCode) IsPopulatedPlace() bool {
	return c.Class() == FeatureClassP
}
