package wbdomain

type Card struct {
	NmID       int64  `json:"nmID"`
	VendorCode string `json:"vendorCode"`
}

type CardsCursor struct {
	Limit     int    `json:"limit"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	NmID      int64  `json:"nmID,omitempty"`
	Total     int    `json:"total,omitempty"`
}

type CardsFilter struct {
	WithPhoto int `json:"withPhoto"`
}

type CardsSettings struct {
	Cursor CardsCursor `json:"cursor"`
	Filter CardsFilter `json:"filter"`
}

type CardsListRequest struct {
	Settings CardsSettings `json:"settings"`
}

type CardsListResponse struct {
	Cards  []Card       `json:"cards"`
	Cursor *CardsCursor `json:"cursor"`
}

// HasNext indica se o cursor retornado permite buscar a próxima página
func (r CardsListResponse) HasNext(limit int) bool {
	if r.Cursor == nil || (r.Cursor.UpdatedAt == "" && r.Cursor.NmID == 0) {
		return false
	}
	return len(r.Cards) >= limit
}
