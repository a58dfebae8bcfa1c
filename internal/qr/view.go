package qr

// View is the projection returned to the editor UI and the owner.
type View struct {
	UUID        string  `json:"uuid"`
	Name        string  `json:"name"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
	Instagram   *string `json:"instagram"`
	Twitter     *string `json:"twitter"`
	TikTok      *string `json:"tiktok"`
	YouTube     *string `json:"youtube"`
	LinkedIn    *string `json:"linkedin"`
	Facebook    *string `json:"facebook"`
	Website     *string `json:"website"`
	IsPublished bool    `json:"isPublished"`
}

// OwnerView adds the cached QR image; disclosed on login only.
type OwnerView struct {
	View
	QRCode string `json:"qrCode"`
}

// PublicView is the public-safe subset: no token, no image, no publish flag,
// no owner identity, no timestamps.
type PublicView struct {
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	TikTok    *string `json:"tiktok"`
	YouTube   *string `json:"youtube"`
	LinkedIn  *string `json:"linkedin"`
	Facebook  *string `json:"facebook"`
	Website   *string `json:"website"`
}

func NewView(p *Profile) View {
	return View{
		UUID:        p.Token,
		Name:        p.Name,
		Bio:         p.Bio,
		Avatar:      p.Avatar,
		Instagram:   p.Instagram,
		Twitter:     p.Twitter,
		TikTok:      p.TikTok,
		YouTube:     p.YouTube,
		LinkedIn:    p.LinkedIn,
		Facebook:    p.Facebook,
		Website:     p.Website,
		IsPublished: p.IsPublished,
	}
}

func NewOwnerView(p *Profile) OwnerView {
	return OwnerView{View: NewView(p), QRCode: p.QRCode}
}

func NewPublicView(p *Profile) PublicView {
	return PublicView{
		Name:      p.Name,
		Bio:       p.Bio,
		Avatar:    p.Avatar,
		Instagram: p.Instagram,
		Twitter:   p.Twitter,
		TikTok:    p.TikTok,
		YouTube:   p.YouTube,
		LinkedIn:  p.LinkedIn,
		Facebook:  p.Facebook,
		Website:   p.Website,
	}
}
