package model

// プロフィールに保存する配送先。初回注文の住所で埋まる
type ShippingAddress struct {
	Address  string `gorm:"type:varchar(255);not null;default:''" json:"address" bson:"address"`
	City     string `gorm:"type:varchar(100);not null;default:''" json:"city" bson:"city"`
	District string `gorm:"type:varchar(100);not null;default:''" json:"district" bson:"district"`
	Ward     string `gorm:"type:varchar(100);not null;default:''" json:"ward" bson:"ward"`
	ZipCode  string `gorm:"type:varchar(20);not null;default:''" json:"zip_code" bson:"zip_code"`
}

// 注文の shipping_address からコピーするキー
var ShippingAddressKeys = []string{"address", "city", "district", "ward", "zip_code"}

// address か city が空なら未登録扱い
func (a ShippingAddress) Incomplete() bool {
	return a.Address == "" || a.City == ""
}

// FillFrom は m に空でない値があるキーだけ上書きする。
// 1つでも書いたら true
func (a *ShippingAddress) FillFrom(m map[string]string) bool {
	changed := false
	for _, key := range ShippingAddressKeys {
		v, ok := m[key]
		if !ok || v == "" {
			continue
		}
		switch key {
		case "address":
			a.Address = v
		case "city":
			a.City = v
		case "district":
			a.District = v
		case "ward":
			a.Ward = v
		case "zip_code":
			a.ZipCode = v
		}
		changed = true
	}
	return changed
}
