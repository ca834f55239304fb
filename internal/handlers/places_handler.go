package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incluiaqui/incluiaqui-api/internal/geo"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/httpresp"
)

type PlacesHandler struct {
	provider geo.Provider
}

func NewPlacesHandler(provider geo.Provider) *PlacesHandler {
	return &PlacesHandler{provider: provider}
}

// --------- Requests ---------

// Coordinates are pointers so that an explicit 0 (equator, prime
// meridian) is not confused with an absent parameter by the
// "required" rule.

type SearchNearbyQuery struct {
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lng" binding:"required,min=-180,max=180"`
	Radius    int      `form:"radius,default=1000" binding:"min=1,max=50000"`
	Keyword   string   `form:"keyword"`
	Type      string   `form:"type"`
}

type GeocodeQuery struct {
	Address string `form:"address" binding:"required"`
}

type ReverseGeocodeQuery struct {
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lng" binding:"required,min=-180,max=180"`
}

type DistanceQuery struct {
	Lat1 *float64 `form:"lat1" binding:"required,min=-90,max=90"`
	Lng1 *float64 `form:"lng1" binding:"required,min=-180,max=180"`
	Lat2 *float64 `form:"lat2" binding:"required,min=-90,max=90"`
	Lng2 *float64 `form:"lng2" binding:"required,min=-180,max=180"`
}

type PictureQuery struct {
	PhotoReference string `form:"photoReference" binding:"required"`
	MaxWidth       int    `form:"maxWidth,default=400" binding:"min=1,max=1600"`
}

// --------- Handlers ---------

func (h *PlacesHandler) SearchNearby(c *gin.Context) {
	var q SearchNearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de busca inválidos.", err.Error())
		return
	}

	places, err := h.provider.SearchNearby(c.Request.Context(), geo.NearbyQuery{
		Latitude:     *q.Latitude,
		Longitude:    *q.Longitude,
		RadiusMeters: q.Radius,
		Keyword:      q.Keyword,
		Type:         q.Type,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, places)
}

func (h *PlacesHandler) Details(c *gin.Context) {
	placeID := c.Param("placeId")

	detail, err := h.provider.GetPlaceDetails(c.Request.Context(), placeID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if detail == nil {
		httperr.Write(c, http.StatusNotFound, httperr.KindNotFound, "Local não encontrado.")
		return
	}

	httpresp.OK(c, detail)
}

func (h *PlacesHandler) Geocode(c *gin.Context) {
	var q GeocodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de geocodificação inválidos.", err.Error())
		return
	}

	result, err := h.provider.Geocode(c.Request.Context(), q.Address)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if result == nil {
		httperr.Write(c, http.StatusNotFound, httperr.KindNotFound, "Endereço não encontrado.")
		return
	}

	httpresp.OK(c, result)
}

func (h *PlacesHandler) ReverseGeocode(c *gin.Context) {
	var q ReverseGeocodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de geocodificação inválidos.", err.Error())
		return
	}

	result, err := h.provider.ReverseGeocode(c.Request.Context(), *q.Latitude, *q.Longitude)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if result == nil {
		httperr.Write(c, http.StatusNotFound, httperr.KindNotFound, "Coordenadas não encontradas.")
		return
	}

	httpresp.OK(c, result)
}

// Distance computes the great-circle distance between two points; no
// upstream call is involved.
func (h *PlacesHandler) Distance(c *gin.Context) {
	var q DistanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de distância inválidos.", err.Error())
		return
	}

	km := geo.DistanceKm(*q.Lat1, *q.Lng1, *q.Lat2, *q.Lng2)

	httpresp.OK(c, gin.H{"distance": km, "unit": "km"})
}

func (h *PlacesHandler) Picture(c *gin.Context) {
	var q PictureQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de foto inválidos.", err.Error())
		return
	}

	url := h.provider.PhotoURL(q.PhotoReference, q.MaxWidth)
	if url == "" {
		httperr.Write(c, http.StatusNotFound, httperr.KindNotFound,
			"Foto não disponível para este provedor.")
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}
