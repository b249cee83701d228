package idcard

// ===========================
// 身份證號碼解析器
// ===========================

// 號碼長度常量
const (
	// FirstGenLength 一代證號碼長度
	FirstGenLength = 15
	// SecondGenLength 二代證號碼長度
	SecondGenLength = 18
)

// firstGenCenturyBase 一代證年份的世紀前綴
//
// 一代證自1984年發放、2013年全面換發完畢，持證人出生年份均在20世紀，
// 兩位年份一律補 "19" 前綴
const firstGenCenturyBase = 1900

// ParsedIDNumber 解析成功的身份證號碼
//
// 設計原則：
// - 只能由 Parser 的解析方法創建：實例存在即代表號碼已通過全部驗證
// - 不可變性：所有欄位為 unexported，無任何修改方法
type ParsedIDNumber struct {
	generation Generation
	regionCode RegionCode
	birthday   Birthday
	sex        Sex
	region     Region
}

// Generation 號碼世代（一代或二代）
func (n *ParsedIDNumber) Generation() Generation {
	return n.generation
}

// RegionCode 行政區劃代碼（號碼前6位）
func (n *ParsedIDNumber) RegionCode() RegionCode {
	return n.regionCode
}

// Birthday 出生日期
func (n *ParsedIDNumber) Birthday() Birthday {
	return n.birthday
}

// Sex 持證人性別（由順序碼末位奇偶推導）
func (n *ParsedIDNumber) Sex() Sex {
	return n.sex
}

// Region 行政區劃名稱（依出生年份的年度區劃表解析，任何一級可能缺失）
func (n *ParsedIDNumber) Region() Region {
	return n.region
}

// Parser 身份證號碼解析器
//
// 不可變對象：創建後可被任意多個 goroutine 併發使用
type Parser struct {
	regions RegionDirectory
}

// NewParser 創建解析器
//
// regions 可為 nil：此時跳過區劃名稱解析（Region 三級全部缺失），
// 號碼驗證本身不受影響
func NewParser(regions RegionDirectory) *Parser {
	return &Parser{regions: regions}
}

// ParseSecondGen 解析並驗證二代（18位）身份證號碼
//
// 驗證順序（後述檢查以前述檢查通過為前提）：
// 1. 長度必須為18個字元 → ErrInvalidLength
// 2. 前17位必須為數字，末位為數字或大寫X → ErrInvalidCharacter
// 3. GB 11643-1999 加權模11校驗 → ErrWrongCheckNumber
// 4. 出生日期（第7-14位）必須為合理範圍內真實存在的日期 → ErrInvalidBirthday
//
// 性別推導與區劃名稱解析在驗證全部通過後進行，且永不失敗
func (p *Parser) ParseSecondGen(number string) (*ParsedIDNumber, error) {
	// 1. 驗證長度（按位元組計算，非 ASCII 輸入自然無法通過）
	if len(number) != SecondGenLength {
		return nil, ErrInvalidLength.WithContext(
			"length", len(number),
			"expected", SecondGenLength,
		)
	}

	// 2. 驗證字元
	for i := 0; i < SecondGenLength-1; i++ {
		if !isASCIIDigit(number[i]) {
			return nil, ErrInvalidCharacter.WithContext("position", i)
		}
	}
	if last := number[SecondGenLength-1]; !isASCIIDigit(last) && last != 'X' {
		return nil, ErrInvalidCharacter.WithContext("position", SecondGenLength-1)
	}

	// 3. 驗證校驗碼
	if !verifyCheckDigit(number) {
		return nil, ErrWrongCheckNumber
	}

	// 4. 驗證出生日期
	birthday, err := NewBirthday(
		atoiDigits(number[6:10]),
		atoiDigits(number[10:12]),
		atoiDigits(number[12:14]),
	)
	if err != nil {
		return nil, err
	}

	return p.assemble(GenerationSecond, number[:6], birthday, number[16]), nil
}

// ParseFirstGen 解析並驗證一代（15位）身份證號碼
//
// 驗證順序：
// 1. 長度必須為15個字元 → ErrInvalidLength
// 2. 15位必須全部為數字（一代證沒有校驗碼）→ ErrInvalidCharacter
// 3. 出生日期（第7-12位，年份補19前綴）必須為真實存在的日期 → ErrInvalidBirthday
func (p *Parser) ParseFirstGen(number string) (*ParsedIDNumber, error) {
	// 1. 驗證長度
	if len(number) != FirstGenLength {
		return nil, ErrInvalidLength.WithContext(
			"length", len(number),
			"expected", FirstGenLength,
		)
	}

	// 2. 驗證字元
	for i := 0; i < FirstGenLength; i++ {
		if !isASCIIDigit(number[i]) {
			return nil, ErrInvalidCharacter.WithContext("position", i)
		}
	}

	// 3. 驗證出生日期
	birthday, err := NewBirthday(
		firstGenCenturyBase+atoiDigits(number[6:8]),
		atoiDigits(number[8:10]),
		atoiDigits(number[10:12]),
	)
	if err != nil {
		return nil, err
	}

	return p.assemble(GenerationFirst, number[:6], birthday, number[14]), nil
}

// assemble 組裝解析結果（所有驗證已通過，此步驟永不失敗）
func (p *Parser) assemble(generation Generation, codeDigits string, birthday Birthday, sequenceDigit byte) *ParsedIDNumber {
	code := regionCodeFromDigits(codeDigits)
	return &ParsedIDNumber{
		generation: generation,
		regionCode: code,
		birthday:   birthday,
		sex:        sexFromSequenceDigit(sequenceDigit),
		region:     ResolveRegion(p.regions, code, birthday.Year()),
	}
}

// isASCIIDigit 是否為 ASCII 數字字元
func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// atoiDigits 將已驗證的數字字串轉換為整數
func atoiDigits(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
