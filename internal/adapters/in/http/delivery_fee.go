package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// draftKey reads the establishment and the editing admin of a draft route.
func draftKey(c echo.Context) (ports.DraftKey, error) {
	establishmentID, err := pathUUID(c, "establishmentId")
	if err != nil {
		return ports.DraftKey{}, err
	}
	actor, err := actorID(c)
	if err != nil {
		return ports.DraftKey{}, err
	}
	return ports.DraftKey{EstablishmentID: establishmentID, ActorID: actor}, nil
}

// GetDeliveryFeeDraft handles GET .../delivery-fee/draft.
func (s *Server) GetDeliveryFeeDraft(c echo.Context) error {
	key, err := draftKey(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetDeliveryFeeDraftQuery(key.EstablishmentID, key.ActorID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.GetDeliveryFeeDraft.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// ChangeDeliveryFeeSettings handles PATCH .../delivery-fee/draft.
func (s *Server) ChangeDeliveryFeeSettings(c echo.Context) error {
	var req SettingsRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.ChangeSettings(req.toSettings()))
}

// AddServedCity handles POST .../delivery-fee/draft/cities.
func (s *Server) AddServedCity(c echo.Context) error {
	var req CityRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.AddCityEdit(req.Name))
}

// RemoveServedCity handles DELETE .../delivery-fee/draft/cities/{city}.
func (s *Server) RemoveServedCity(c echo.Context) error {
	city, err := pathString(c, "city")
	if err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.RemoveCityEdit(city))
}

// AddNeighborhoodTier handles POST .../delivery-fee/draft/neighborhood-tiers.
func (s *Server) AddNeighborhoodTier(c echo.Context) error {
	var req NeighborhoodTierRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.AddNeighborhoodTierEdit(deliveryfee.NeighborhoodTierInput{
		Name:      req.Name,
		City:      req.City,
		FeeAmount: req.FeeAmount,
	}))
}

// AddDistanceTier handles POST .../delivery-fee/draft/distance-tiers.
func (s *Server) AddDistanceTier(c echo.Context) error {
	var req DistanceTierRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.AddDistanceTierEdit(deliveryfee.DistanceTierInput{
		MaxDistanceKm: req.MaxDistanceKm,
		FeeAmount:     req.FeeAmount,
	}))
}

// ToggleTier handles POST .../delivery-fee/draft/tiers/{tierId}/toggle.
func (s *Server) ToggleTier(c echo.Context) error {
	id, err := pathString(c, "tierId")
	if err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.ToggleTierEdit(id))
}

// RemoveTier handles DELETE .../delivery-fee/draft/tiers/{tierId}.
func (s *Server) RemoveTier(c echo.Context) error {
	id, err := pathString(c, "tierId")
	if err != nil {
		return s.fail(c, err)
	}
	return s.edit(c, deliveryfee.RemoveTierEdit(id))
}

func (s *Server) edit(c echo.Context, edit deliveryfee.Edit) error {
	key, err := draftKey(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewEditDeliveryFeeDraftCommand(key, edit)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.EditDeliveryFeeDraft.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// SaveDeliveryFeeConfig handles POST .../delivery-fee/draft/save. A draft that
// cannot be saved or has no changes is answered with 200 and the outcome.
func (s *Server) SaveDeliveryFeeConfig(c echo.Context) error {
	key, err := draftKey(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSaveDeliveryFeeConfigCommand(key)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.SaveDeliveryFeeConfig.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	fields := result.Fields
	if fields == nil {
		fields = []deliveryfee.Field{}
	}
	return c.JSON(http.StatusOK, SaveResponse{
		Outcome: result.Outcome,
		Fields:  fields,
		View:    result.View,
	})
}

// DiscardDeliveryFeeDraft handles DELETE .../delivery-fee/draft.
func (s *Server) DiscardDeliveryFeeDraft(c echo.Context) error {
	key, err := draftKey(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDiscardDeliveryFeeDraftCommand(key)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DiscardDeliveryFeeDraft.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// QuoteDeliveryFee handles POST .../delivery-fee/quote. It prices with the saved
// config, so no actor is needed.
func (s *Server) QuoteDeliveryFee(c echo.Context) error {
	establishmentID, err := pathUUID(c, "establishmentId")
	if err != nil {
		return s.fail(c, err)
	}
	var req QuoteRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewQuoteDeliveryFeeQuery(establishmentID, req.toDestination(), req.OrderTotal)
	if err != nil {
		return s.fail(c, err)
	}
	quote, err := s.handlers.QuoteDeliveryFee.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}
