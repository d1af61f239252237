package request

type LocationSearchQuery struct {
	Query string `form:"q" binding:"required,max=200"`
	City  string `form:"city" binding:"max=120"`
	State string `form:"state" binding:"max=60"`
}

type NationwideSearchQuery struct {
	Brand string `form:"brand" binding:"required,max=200"`
	State string `form:"state" binding:"max=60"`
	City  string `form:"city" binding:"max=120"`
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// MaxResults is 0 when no limit was given.
func (q NationwideSearchQuery) MaxResults() int {
	if q.Limit == nil {
		return 0
	}
	return *q.Limit
}

type ReverseGeocodeQuery struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `form:"lng" binding:"required,min=-180,max=180"`
}

type GeocodeQuery struct {
	Address string `form:"address" binding:"required,max=300"`
	City    string `form:"city" binding:"max=120"`
	State   string `form:"state" binding:"max=60"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
