package model

// HomePage is the singleton record holding landing page content. The *_json
// columns carry serialized lists that are stored and returned verbatim;
// decoding them is the frontend's concern.
type HomePage struct {
	ID                   uint    `json:"-" gorm:"primaryKey"`
	LogoURL              *string `json:"logo_url" gorm:"size:255"`
	NavLinksJSON         *string `json:"nav_links_json" gorm:"type:text"`
	MainTitle            *string `json:"main_title" gorm:"size:255"`
	Slogan               *string `json:"slogan" gorm:"type:text"`
	RotatingKeywordsJSON *string `json:"rotating_keywords_json" gorm:"type:text"`
	NascidoEmSPTitle     *string `json:"nascido_em_sp_title" gorm:"type:text"`
	NascidoEmSPQuote     *string `json:"nascido_em_sp_quote" gorm:"type:text"`
	BestPracticesTitle   *string `json:"best_practices_title" gorm:"type:text"`
	EmotionDrivenTitle   *string `json:"emotion_driven_title" gorm:"type:text"`
	ServicesJSON         *string `json:"services_json" gorm:"type:text"`
	GoodAtTitle          *string `json:"good_at_title" gorm:"size:255"`
	GoodAtIntro          *string `json:"good_at_intro" gorm:"type:text"`
	ClientsJSON          *string `json:"clients_json" gorm:"type:text"`
	PartnersTitle        *string `json:"partners_title" gorm:"size:255"`
	PartnersJSON         *string `json:"partners_json" gorm:"type:text"`
	CTATitle             *string `json:"cta_title" gorm:"size:255"`
	CTASubtitle          *string `json:"cta_subtitle" gorm:"type:text"`
	CTAButtonText        *string `json:"cta_button_text" gorm:"size:255"`
	HeaderBgColor        *string `json:"header_bg_color" gorm:"size:7"`
	Section1BgImageURL   *string `json:"section_1_bg_image_url" gorm:"size:255"`
}

// TableName overrides the table name.
func (HomePage) TableName() string {
	return "home_pages"
}
