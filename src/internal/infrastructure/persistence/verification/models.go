package verification

import (
	"time"

	"github.com/jackyeh168/resident_id/src/internal/domain/idcard"
	"github.com/jackyeh168/resident_id/src/internal/domain/verification"
)

// ===========================
// GORM Models
// ===========================

// VerificationGORM 驗證記錄資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 使用 GORM 標籤定義資料庫結構
// - 與 Domain VerificationRecord 聚合分離（Mapper 轉換）
//
// 資料庫約束：
// - verification_id: 主鍵（UUID）
// - masked_number: 不可為空（只保存遮罩後的號碼，絕不保存原始號碼）
// - outcome: 不可為空，建立索引（統計查詢用）
// - rejection_code: 僅拒絕記錄有值
// - sex / birth_* / province / city / district: 僅通過記錄有值
//
// 注意：驗證記錄是不可變的審計資料，沒有 UpdatedAt、Version 與軟刪除欄位
type VerificationGORM struct {
	// 識別欄位
	VerificationID string `gorm:"column:verification_id;type:varchar(36);primaryKey"` // UUID 字串

	// 驗證資料
	MaskedNumber  string  `gorm:"column:masked_number;type:varchar(18);not null"`
	Generation    string  `gorm:"column:generation;type:varchar(10);not null"`
	Outcome       string  `gorm:"column:outcome;type:varchar(16);not null;index"`
	RejectionCode *string `gorm:"column:rejection_code;type:varchar(32)"` // Nullable

	// 持證人資訊（僅通過記錄有值）
	Sex        *string `gorm:"column:sex;type:varchar(8)"`       // Nullable
	BirthYear  *int    `gorm:"column:birth_year"`                // Nullable
	BirthMonth *int    `gorm:"column:birth_month"`               // Nullable
	BirthDay   *int    `gorm:"column:birth_day"`                 // Nullable
	Province   *string `gorm:"column:province;type:varchar(64)"` // Nullable
	City       *string `gorm:"column:city;type:varchar(64)"`     // Nullable
	District   *string `gorm:"column:district;type:varchar(64)"` // Nullable

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (VerificationGORM) TableName() string {
	return "verification_records"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
//
// 參數：
// - v: GORM 模型
//
// 返回：
// - *verification.VerificationRecord: Domain 聚合
// - error: 轉換失敗時返回錯誤
//
// 轉換邏輯：
// - VerificationID: 字串 → VerificationID 值對象
// - Generation / Outcome: 字串 → 值對象（Checked 轉換）
// - Sex / Birth* / 區劃欄位: Nullable 欄位 → SubjectDetails（處理 NULL）
//
// 不變條件由 ReconstructVerificationRecord 驗證，損壞資料無法進入領域層
func (v *VerificationGORM) toDomain() (*verification.VerificationRecord, error) {
	// 1. 轉換 VerificationID
	verificationID, err := verification.VerificationIDFromString(v.VerificationID)
	if err != nil {
		return nil, err
	}

	// 2. 轉換 Generation
	generation, err := idcard.GenerationFromString(v.Generation)
	if err != nil {
		return nil, err
	}

	// 3. 轉換 Outcome
	outcome, err := verification.OutcomeFromString(v.Outcome)
	if err != nil {
		return nil, err
	}

	// 4. 轉換 RejectionCode（處理 NULL）
	var rejectionCode idcard.ErrorCode
	if v.RejectionCode != nil {
		rejectionCode = idcard.ErrorCode(*v.RejectionCode)
	}

	// 5. 轉換持證人資訊（通過記錄必有 sex 與完整出生日期）
	var subject *verification.SubjectDetails
	if v.Sex != nil && v.BirthYear != nil && v.BirthMonth != nil && v.BirthDay != nil {
		sex, err := idcard.SexFromString(*v.Sex)
		if err != nil {
			return nil, err
		}

		birthday, err := idcard.NewBirthday(*v.BirthYear, *v.BirthMonth, *v.BirthDay)
		if err != nil {
			return nil, err
		}

		subject = &verification.SubjectDetails{
			Sex:      sex,
			Birthday: birthday,
			Region: idcard.NewRegion(
				stringOrEmpty(v.Province),
				stringOrEmpty(v.City),
				stringOrEmpty(v.District),
			),
		}
	}

	// 6. 重建 Domain 聚合
	return verification.ReconstructVerificationRecord(
		verificationID,
		v.MaskedNumber,
		generation,
		outcome,
		rejectionCode,
		subject,
		v.CreatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
//
// 參數：
// - record: Domain 聚合
//
// 返回：
// - *VerificationGORM: GORM 模型
//
// 轉換邏輯：
// - RejectionCode: 空字串 → NULL
// - SubjectDetails: 不存在 → 全部 NULL；區劃名稱空字串 → NULL
func toGORM(record *verification.VerificationRecord) *VerificationGORM {
	model := &VerificationGORM{
		VerificationID: record.VerificationID().String(),
		MaskedNumber:   record.MaskedNumber(),
		Generation:     record.Generation().String(),
		Outcome:        record.Outcome().String(),
		CreatedAt:      record.CreatedAt(),
	}

	// 處理 RejectionCode（空字串 → NULL）
	if code := record.RejectionCode(); code != "" {
		codeStr := string(code)
		model.RejectionCode = &codeStr
	}

	// 處理持證人資訊（不存在 → NULL）
	if subject, ok := record.Subject(); ok {
		sexStr := subject.Sex.String()
		year := subject.Birthday.Year()
		month := subject.Birthday.Month()
		day := subject.Birthday.Day()

		model.Sex = &sexStr
		model.BirthYear = &year
		model.BirthMonth = &month
		model.BirthDay = &day
		model.Province = stringOrNil(subject.Region.Province())
		model.City = stringOrNil(subject.Region.City())
		model.District = stringOrNil(subject.Region.District())
	}

	return model
}

// stringOrEmpty 將 Nullable 欄位轉為字串（NULL → 空字串）
func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// stringOrNil 將字串轉為 Nullable 欄位（空字串 → NULL）
func stringOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
