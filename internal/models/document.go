package models

// DocumentCategory names one of the sixteen document slots of the form.
// The value doubles as the multipart field name.
type DocumentCategory string

const (
	DocCV                DocumentCategory = "cv"
	DocFotograf          DocumentCategory = "fotograf"
	DocPasaport          DocumentCategory = "pasaport"
	DocKimlikKarti       DocumentCategory = "kimlikKarti"
	DocSurucuBelgesi     DocumentCategory = "surucuBelgesi"
	DocDiplomaTranskript DocumentCategory = "diplomaTranskript"
	DocMezuniyetBelgesi  DocumentCategory = "mezuniyetBelgesi"
	DocMeslekiYeterlilik DocumentCategory = "meslekiYeterlilik"
	DocMuhtelifBelgeler  DocumentCategory = "muhtelifBelgeler"
	DocSgkHizmetCetveli  DocumentCategory = "sgkHizmetCetveli"
	DocAdliSicil         DocumentCategory = "adliSicil"
	DocAlmancaAdliSicil  DocumentCategory = "almancaAdliSicil"
	DocNufusKayit        DocumentCategory = "nufusKayit"
	DocFormulA           DocumentCategory = "formulA"
	DocFormulB           DocumentCategory = "formulB"
	DocHukukiBelgeler    DocumentCategory = "hukukiBelgeler"
)

// DocumentCategories is the fixed upload order; submissions always walk it
// front to back.
var DocumentCategories = []DocumentCategory{
	DocCV,
	DocFotograf,
	DocPasaport,
	DocKimlikKarti,
	DocSurucuBelgesi,
	DocDiplomaTranskript,
	DocMezuniyetBelgesi,
	DocMeslekiYeterlilik,
	DocMuhtelifBelgeler,
	DocSgkHizmetCetveli,
	DocAdliSicil,
	DocAlmancaAdliSicil,
	DocNufusKayit,
	DocFormulA,
	DocFormulB,
	DocHukukiBelgeler,
}

// SetDocument records a successful upload for one category. Both fields are
// always written together; a category never ends up with only one of them.
func (a *Application) SetDocument(cat DocumentCategory, link, displayName string) {
	path, name := a.documentFields(cat)
	if path == nil {
		return
	}
	*path = &link
	*name = &displayName
}

// Document returns the stored link and display name for one category; both
// are nil when nothing was uploaded.
func (a *Application) Document(cat DocumentCategory) (link, displayName *string) {
	path, name := a.documentFields(cat)
	if path == nil {
		return nil, nil
	}
	return *path, *name
}

func (a *Application) documentFields(cat DocumentCategory) (link, displayName **string) {
	switch cat {
	case DocCV:
		return &a.CvPath, &a.CvOriginalName
	case DocFotograf:
		return &a.FotografPath, &a.FotografOriginalName
	case DocPasaport:
		return &a.PasaportPath, &a.PasaportOriginalName
	case DocKimlikKarti:
		return &a.KimlikKartiPath, &a.KimlikKartiOriginalName
	case DocSurucuBelgesi:
		return &a.SurucuBelgesiPath, &a.SurucuBelgesiOriginalName
	case DocDiplomaTranskript:
		return &a.DiplomaTranskriptPath, &a.DiplomaTranskriptOriginalName
	case DocMezuniyetBelgesi:
		return &a.MezuniyetBelgesiPath, &a.MezuniyetBelgesiOriginalName
	case DocMeslekiYeterlilik:
		return &a.MeslekiYeterlilikPath, &a.MeslekiYeterlilikOriginalName
	case DocMuhtelifBelgeler:
		return &a.MuhtelifBelgelerPath, &a.MuhtelifBelgelerOriginalName
	case DocSgkHizmetCetveli:
		return &a.SgkHizmetCetveliPath, &a.SgkHizmetCetveliOriginalName
	case DocAdliSicil:
		return &a.AdliSicilPath, &a.AdliSicilOriginalName
	case DocAlmancaAdliSicil:
		return &a.AlmancaAdliSicilPath, &a.AlmancaAdliSicilOriginalName
	case DocNufusKayit:
		return &a.NufusKayitPath, &a.NufusKayitOriginalName
	case DocFormulA:
		return &a.FormulAPath, &a.FormulAOriginalName
	case DocFormulB:
		return &a.FormulBPath, &a.FormulBOriginalName
	case DocHukukiBelgeler:
		return &a.HukukiBelgelerPath, &a.HukukiBelgelerOriginalName
	}
	return nil, nil
}
