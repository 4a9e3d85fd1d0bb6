package voice

// Voice - 음성 카탈로그 항목
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Accent      string `json:"accent"`
	Gender      string `json:"gender"`
	Age         string `json:"age"`
	Description string `json:"description"`
}

// Library - 면접 컨텍스트용으로 선별한 ElevenLabs 음성 카탈로그
// 프로세스 전역 읽기 전용 설정 데이터
var Library = []Voice{
	// ========== BRITISH ENGLISH ==========
	{ID: "JBFqnCBsd6RMkjVDRZzb", Name: "George", Accent: "british", Gender: "male", Age: "middle", Description: "warm, professional British male"},
	{ID: "onwK4e9ZLuTAKqWW03F9", Name: "Daniel", Accent: "british", Gender: "male", Age: "middle", Description: "deep British male"},
	{ID: "ThT5KcBeYPX3keUQqHPh", Name: "Dorothy", Accent: "british", Gender: "female", Age: "young", Description: "pleasant British female"},
	{ID: "Xb7hH8MSUJpSbSDYk0k2", Name: "Alice", Accent: "british", Gender: "female", Age: "middle", Description: "confident British female"},

	// ========== AMERICAN ENGLISH ==========
	{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Accent: "american", Gender: "female", Age: "young", Description: "calm American female"},
	{ID: "XrExE9yKIg1WjnnlVkGX", Name: "Matilda", Accent: "american", Gender: "female", Age: "young", Description: "warm American female"},
	{ID: "LcfcDJNUP1GQjkzn1xUU", Name: "Emily", Accent: "american", Gender: "female", Age: "young", Description: "calm American female"},
	{ID: "ErXwobaYiN019PkySvjV", Name: "Antoni", Accent: "american", Gender: "male", Age: "young", Description: "professional American male"},
	{ID: "TxGEqnHWrfWFTfGW9XjX", Name: "Josh", Accent: "american", Gender: "male", Age: "young", Description: "deep American male"},
	{ID: "pNInz6obpgDQGcFmaJgB", Name: "Adam", Accent: "american", Gender: "male", Age: "middle", Description: "deep American male"},
	{ID: "VR6AewLTigWG4xSOukaG", Name: "Arnold", Accent: "american", Gender: "male", Age: "mature", Description: "authoritative American male"},

	// ========== AUSTRALIAN ENGLISH ==========
	{ID: "ZQe5CZNOzWyzPSCn5a3c", Name: "James", Accent: "australian", Gender: "male", Age: "mature", Description: "calm Australian male"},
	{ID: "IKne3meq5aSn9XLyUdCD", Name: "Charlie", Accent: "australian", Gender: "male", Age: "middle", Description: "casual Australian male"},

	// ========== INDIAN ENGLISH ==========
	{ID: "N2al4jd45e882svx17SU", Name: "Aakash", Accent: "indian", Gender: "male", Age: "middle", Description: "professional Indian male"},
	{ID: "k7nOSUCadIEwB6fdJmbw", Name: "Ahmed", Accent: "indian", Gender: "male", Age: "middle", Description: "warm professional Indian male"},
	{ID: "mfMM3ijQgz8QtMeKifko", Name: "Riya", Accent: "indian", Gender: "female", Age: "young", Description: "professional Indian female"},
	{ID: "pGYsZruQzo8cpdFVZyJc", Name: "Smriti", Accent: "indian", Gender: "female", Age: "middle", Description: "warm Indian female"},

	// ========== ARABIC / DUBAI / MIDDLE EAST ==========
	{ID: "G1HOkzin3NMwRHSq60UI", Name: "Chaouki", Accent: "arabic", Gender: "male", Age: "middle", Description: "deep professional Arabic male"},
	{ID: "5Spsi3mCH9e7futpnGE5", Name: "Fares", Accent: "arabic", Gender: "male", Age: "middle", Description: "warm Gulf Arabic male"},
	{ID: "qi4PkV9c01kb869Vh7Su", Name: "Asmaa", Accent: "arabic", Gender: "female", Age: "young", Description: "gentle Arabic female"},
	{ID: "a1KZUXKFVFDOb33I1uqr", Name: "Salma", Accent: "arabic", Gender: "female", Age: "young", Description: "young talented Arabic female"},

	// ========== RUSSIAN ==========
	{ID: "1qd9R09Ljlx9V1Ok0t5S", Name: "Ivan", Accent: "russian", Gender: "male", Age: "middle", Description: "deep velvety Russian male"},
	{ID: "kwajW3Xh5svCeKU5ky2S", Name: "Dmitry", Accent: "russian", Gender: "male", Age: "young", Description: "cheerful Russian male"},
	{ID: "8M81RK3MD7u4DOJpu2G5", Name: "Viktoriia", Accent: "russian", Gender: "female", Age: "young", Description: "clear resonant Russian female"},
	{ID: "C3FusDjPequ6qFchqpzu", Name: "Ekaterina", Accent: "russian", Gender: "female", Age: "middle", Description: "warm engaging Russian female"},

	// ========== CHINESE / MANDARIN ==========
	{ID: "4VZIsMPtgggwNg7OXbPY", Name: "James Gao", Accent: "chinese", Gender: "male", Age: "middle", Description: "calm friendly Chinese male"},
	{ID: "Ixmp8zKRajBp10jLtsrq", Name: "Lazarus", Accent: "chinese", Gender: "male", Age: "young", Description: "neutral Mandarin male"},
	{ID: "bhJUNIXWQQ94l8eI2VUf", Name: "Amy", Accent: "chinese", Gender: "female", Age: "young", Description: "natural friendly Chinese female"},
	{ID: "ByhETIclHirOlWnWKhHc", Name: "ShanShan", Accent: "chinese", Gender: "female", Age: "young", Description: "youthful lively Chinese female"},

	// ========== LATIN AMERICAN SPANISH ==========
	{ID: "wSFJ1H2XywFI0wLdTylp", Name: "Karim", Accent: "latam", Gender: "male", Age: "young", Description: "neutral Mexican male"},
	{ID: "W6Z2FAa578IKOGSVo2sA", Name: "Eduardo", Accent: "latam", Gender: "male", Age: "middle", Description: "authentic Mexican male"},
	{ID: "J4vZAFDEcpenkMp3f3R9", Name: "Valentina", Accent: "latam", Gender: "female", Age: "young", Description: "conversational Colombian female"},
	{ID: "VmejBeYhbrcTPwDniox7", Name: "Lina", Accent: "latam", Gender: "female", Age: "young", Description: "warm friendly Colombian female"},

	// ========== SPANISH (SPAIN) ==========
	{ID: "usTmJvQOCyW3nRcZ8OEo", Name: "Dante", Accent: "spanish", Gender: "male", Age: "middle", Description: "dynamic Castilian Spanish male"},
	{ID: "1vLlJCWRhRcfmTewn4cm", Name: "Javier", Accent: "spanish", Gender: "male", Age: "middle", Description: "expressive Spanish male"},
	{ID: "dHdIIFZMLzs6XfsGtmIP", Name: "Sheila", Accent: "spanish", Gender: "female", Age: "middle", Description: "dynamic Spanish female"},

	// ========== GERMAN ==========
	{ID: "ODq5zmih8GrVes37Dizd", Name: "Patrick", Accent: "german", Gender: "male", Age: "middle", Description: "clear German male"},

	// ========== FRENCH ==========
	{ID: "XB0fDUnXU5powFXDhCwa", Name: "Charlotte", Accent: "french", Gender: "female", Age: "young", Description: "elegant French female"},

	// ========== ITALIAN ==========
	{ID: "zcAOhNBS3c14rBihAFp1", Name: "Giovanni", Accent: "italian", Gender: "male", Age: "young", Description: "Italian-English male"},

	// ========== NEUTRAL / INTERNATIONAL ==========
	{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Sarah", Accent: "neutral", Gender: "female", Age: "young", Description: "soft neutral female"},
	{ID: "pMsXgVXv3BLzUgSXRplE", Name: "Serena", Accent: "neutral", Gender: "female", Age: "middle", Description: "pleasant neutral female"},
	{ID: "nPczCjzI2devNBz1zQrb", Name: "Brian", Accent: "neutral", Gender: "male", Age: "middle", Description: "deep neutral male"},
}

// nameAccentGroup - 이름에서 억양을 추정하기 위한 이름 목록
type nameAccentGroup struct {
	accent string
	names  []string
}

// nameAccentGroups - 억양별 흔한 이름 목록 (순서 고정 - 앞쪽 그룹이 우선)
var nameAccentGroups = []nameAccentGroup{
	{"indian", []string{"raj", "priya", "amit", "neha", "vikram", "ananya", "arjun", "deepa", "krishna", "lakshmi", "ravi", "sunita", "arun", "kavita", "sanjay", "meera", "aakash", "riya", "smriti", "rahul", "pooja", "aditya", "shreya"}},
	{"arabic", []string{"ahmed", "fatima", "mohammed", "aisha", "omar", "layla", "hassan", "sara", "mahmoud", "nour", "khalid", "yasmin", "ali", "hana", "youssef", "amira", "fares", "salma", "asmaa", "rashid", "maryam", "sultan", "noura"}},
	{"british", []string{"william", "elizabeth", "james", "victoria", "george", "charlotte", "harry", "emma", "oliver", "sophia", "edward", "alice", "henry", "margaret"}},
	{"german", []string{"hans", "greta", "klaus", "ingrid", "wolfgang", "helga", "fritz", "ursula", "dieter", "brigitte", "heinrich", "anna", "stefan", "katrin"}},
	{"latam", []string{"carlos", "maria", "jose", "ana", "miguel", "carmen", "antonio", "isabel", "juan", "pablo", "lucia", "diego", "elena", "valentina", "santiago", "camila", "alejandro", "gabriela", "fernando", "adriana", "ricardo", "natalia"}},
	{"spanish", []string{"javier", "sofia", "alvaro", "marta", "ines", "gonzalo", "pilar", "rafael", "rocio"}},
	{"french", []string{"pierre", "marie", "jean", "claire", "louis", "sophie", "michel", "camille", "francois", "aurelie", "antoine", "juliette", "laurent", "celine"}},
	{"russian", []string{"ivan", "natasha", "dmitry", "olga", "sergey", "alexei", "elena", "nikolai", "tatiana", "vladimir", "andrei", "ekaterina", "viktor", "anastasia", "mikhail", "irina"}},
	{"chinese", []string{"wei", "ming", "li", "wang", "chen", "zhang", "liu", "yang", "huang", "zhao", "xiao", "jing", "ying", "mei", "hong", "jun", "hui", "lin", "yu", "fang"}},
	{"italian", []string{"marco", "giulia", "luca", "francesca", "matteo", "chiara", "lorenzo", "valentina", "andrea", "alessia", "giovanni", "sofia"}},
}
