package wbdomain

// AdDocument é um documento de cobrança de publicidade (/adv/v1/upd)
type AdDocument struct {
	AdvertID int64   `json:"advertId"`
	UpdNum   int64   `json:"updNum"`
	UpdSum   float64 `json:"updSum"`
	UpdTime  string  `json:"updTime"`
	CampName string  `json:"campName"`
}

type FullStatsRequest struct {
	ID    int64    `json:"id"`
	Dates []string `json:"dates"`
}

type FullStatsCampaign struct {
	AdvertID int64          `json:"advertId"`
	Days     []FullStatsDay `json:"days"`
}

type FullStatsDay struct {
	Date string         `json:"date"`
	Apps []FullStatsApp `json:"apps"`
}

type FullStatsApp struct {
	AppType int           `json:"appType"`
	Nm      []FullStatsNm `json:"nm"`
}

type FullStatsNm struct {
	NmID int64   `json:"nmId"`
	Name string  `json:"name"`
	Sum  float64 `json:"sum"`
}
