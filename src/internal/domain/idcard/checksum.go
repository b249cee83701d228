package idcard

// ===========================
// GB 11643-1999 校驗碼
// ===========================

// checkWeights 前17位的加權因子
//
// 第 i 位（從0起算）的權重為 2^(17-i) mod 11（GB 11643-1999 規定值）
var checkWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// checkSymbolValue 校驗字元的數值
//
// '0'-'9' 為面值，'X' 為 10（羅馬數字十）
// symbol 必須是已通過字元驗證的校驗字元
func checkSymbolValue(symbol byte) int {
	if symbol == 'X' {
		return 10
	}
	return int(symbol - '0')
}

// verifyCheckDigit 驗證18位號碼的校驗碼
//
// 演算法：以校驗字元數值為初始值，逐位累加「數字×權重」並即時對 11 取模，
// 最終餘數為 1 即校驗通過（與一次性加總後取模結果一致，且中間值不溢位）
//
// number 必須是已通過長度與字元驗證的18位號碼
func verifyCheckDigit(number string) bool {
	sum := checkSymbolValue(number[17])
	for i := 0; i < 17; i++ {
		sum += int(number[i]-'0') * checkWeights[i]
		sum %= 11
	}
	return sum == 1
}
