package models

import "time"

// Application is one submitted candidate form together with the remote
// links of every document that was uploaded for it.
type Application struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" bson:"_id" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" bson:"updated_at" json:"updatedAt"`

	Name  string `gorm:"column:name;type:text;not null" bson:"name" json:"name"`
	Email string `gorm:"column:email;type:text;not null" bson:"email" json:"email"`

	Telefon     string `gorm:"column:telefon;type:text" bson:"telefon,omitempty" json:"telefon,omitempty"`
	Cinsiyet    string `gorm:"column:cinsiyet;type:text" bson:"cinsiyet,omitempty" json:"cinsiyet,omitempty"`
	DogumTarihi string `gorm:"column:dogum_tarihi;type:text" bson:"dogum_tarihi,omitempty" json:"dogumTarihi,omitempty"`
	GozRengi    string `gorm:"column:goz_rengi;type:text" bson:"goz_rengi,omitempty" json:"gozRengi,omitempty"`
	Boy         string `gorm:"column:boy;type:text" bson:"boy,omitempty" json:"boy,omitempty"`
	Kilo        string `gorm:"column:kilo;type:text" bson:"kilo,omitempty" json:"kilo,omitempty"`
	Adres       string `gorm:"column:adres;type:text" bson:"adres,omitempty" json:"adres,omitempty"`
	Profession  string `gorm:"column:profession;type:text" bson:"profession,omitempty" json:"profession,omitempty"`
	Message     string `gorm:"column:message;type:text" bson:"message,omitempty" json:"message,omitempty"`

	Egitim EducationMap `gorm:"column:egitim;type:jsonb;serializer:json" bson:"egitim,omitempty" json:"egitim,omitempty"`

	CvPath         *string `gorm:"column:cv_path;type:text" bson:"cv_path,omitempty" json:"cvPath,omitempty"`
	CvOriginalName *string `gorm:"column:cv_original_name;type:text" bson:"cv_original_name,omitempty" json:"cvOriginalName,omitempty"`

	FotografPath         *string `gorm:"column:fotograf_path;type:text" bson:"fotograf_path,omitempty" json:"fotografPath,omitempty"`
	FotografOriginalName *string `gorm:"column:fotograf_original_name;type:text" bson:"fotograf_original_name,omitempty" json:"fotografOriginalName,omitempty"`

	PasaportPath         *string `gorm:"column:pasaport_path;type:text" bson:"pasaport_path,omitempty" json:"pasaportPath,omitempty"`
	PasaportOriginalName *string `gorm:"column:pasaport_original_name;type:text" bson:"pasaport_original_name,omitempty" json:"pasaportOriginalName,omitempty"`

	KimlikKartiPath         *string `gorm:"column:kimlik_karti_path;type:text" bson:"kimlik_karti_path,omitempty" json:"kimlikKartiPath,omitempty"`
	KimlikKartiOriginalName *string `gorm:"column:kimlik_karti_original_name;type:text" bson:"kimlik_karti_original_name,omitempty" json:"kimlikKartiOriginalName,omitempty"`

	SurucuBelgesiPath         *string `gorm:"column:surucu_belgesi_path;type:text" bson:"surucu_belgesi_path,omitempty" json:"surucuBelgesiPath,omitempty"`
	SurucuBelgesiOriginalName *string `gorm:"column:surucu_belgesi_original_name;type:text" bson:"surucu_belgesi_original_name,omitempty" json:"surucuBelgesiOriginalName,omitempty"`

	DiplomaTranskriptPath         *string `gorm:"column:diploma_transkript_path;type:text" bson:"diploma_transkript_path,omitempty" json:"diplomaTranskriptPath,omitempty"`
	DiplomaTranskriptOriginalName *string `gorm:"column:diploma_transkript_original_name;type:text" bson:"diploma_transkript_original_name,omitempty" json:"diplomaTranskriptOriginalName,omitempty"`

	MezuniyetBelgesiPath         *string `gorm:"column:mezuniyet_belgesi_path;type:text" bson:"mezuniyet_belgesi_path,omitempty" json:"mezuniyetBelgesiPath,omitempty"`
	MezuniyetBelgesiOriginalName *string `gorm:"column:mezuniyet_belgesi_original_name;type:text" bson:"mezuniyet_belgesi_original_name,omitempty" json:"mezuniyetBelgesiOriginalName,omitempty"`

	MeslekiYeterlilikPath         *string `gorm:"column:mesleki_yeterlilik_path;type:text" bson:"mesleki_yeterlilik_path,omitempty" json:"meslekiYeterlilikPath,omitempty"`
	MeslekiYeterlilikOriginalName *string `gorm:"column:mesleki_yeterlilik_original_name;type:text" bson:"mesleki_yeterlilik_original_name,omitempty" json:"meslekiYeterlilikOriginalName,omitempty"`

	MuhtelifBelgelerPath         *string `gorm:"column:muhtelif_belgeler_path;type:text" bson:"muhtelif_belgeler_path,omitempty" json:"muhtelifBelgelerPath,omitempty"`
	MuhtelifBelgelerOriginalName *string `gorm:"column:muhtelif_belgeler_original_name;type:text" bson:"muhtelif_belgeler_original_name,omitempty" json:"muhtelifBelgelerOriginalName,omitempty"`

	SgkHizmetCetveliPath         *string `gorm:"column:sgk_hizmet_cetveli_path;type:text" bson:"sgk_hizmet_cetveli_path,omitempty" json:"sgkHizmetCetveliPath,omitempty"`
	SgkHizmetCetveliOriginalName *string `gorm:"column:sgk_hizmet_cetveli_original_name;type:text" bson:"sgk_hizmet_cetveli_original_name,omitempty" json:"sgkHizmetCetveliOriginalName,omitempty"`

	AdliSicilPath         *string `gorm:"column:adli_sicil_path;type:text" bson:"adli_sicil_path,omitempty" json:"adliSicilPath,omitempty"`
	AdliSicilOriginalName *string `gorm:"column:adli_sicil_original_name;type:text" bson:"adli_sicil_original_name,omitempty" json:"adliSicilOriginalName,omitempty"`

	AlmancaAdliSicilPath         *string `gorm:"column:almanca_adli_sicil_path;type:text" bson:"almanca_adli_sicil_path,omitempty" json:"almancaAdliSicilPath,omitempty"`
	AlmancaAdliSicilOriginalName *string `gorm:"column:almanca_adli_sicil_original_name;type:text" bson:"almanca_adli_sicil_original_name,omitempty" json:"almancaAdliSicilOriginalName,omitempty"`

	NufusKayitPath         *string `gorm:"column:nufus_kayit_path;type:text" bson:"nufus_kayit_path,omitempty" json:"nufusKayitPath,omitempty"`
	NufusKayitOriginalName *string `gorm:"column:nufus_kayit_original_name;type:text" bson:"nufus_kayit_original_name,omitempty" json:"nufusKayitOriginalName,omitempty"`

	FormulAPath         *string `gorm:"column:formul_a_path;type:text" bson:"formul_a_path,omitempty" json:"formulAPath,omitempty"`
	FormulAOriginalName *string `gorm:"column:formul_a_original_name;type:text" bson:"formul_a_original_name,omitempty" json:"formulAOriginalName,omitempty"`

	FormulBPath         *string `gorm:"column:formul_b_path;type:text" bson:"formul_b_path,omitempty" json:"formulBPath,omitempty"`
	FormulBOriginalName *string `gorm:"column:formul_b_original_name;type:text" bson:"formul_b_original_name,omitempty" json:"formulBOriginalName,omitempty"`

	HukukiBelgelerPath         *string `gorm:"column:hukuki_belgeler_path;type:text" bson:"hukuki_belgeler_path,omitempty" json:"hukukiBelgelerPath,omitempty"`
	HukukiBelgelerOriginalName *string `gorm:"column:hukuki_belgeler_original_name;type:text" bson:"hukuki_belgeler_original_name,omitempty" json:"hukukiBelgelerOriginalName,omitempty"`

	RaporPath *string `gorm:"column:rapor_path;type:text" bson:"rapor_path,omitempty" json:"raporPath,omitempty"`
}

func (Application) TableName() string { return "applications" }
