package v1

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/napmap/internal/models"
)

func coordinateResponse(c models.Coordinate) CoordinateResponse {
	return CoordinateResponse{Latitude: c.Latitude, Longitude: c.Longitude}
}

// ModelToMarkerResponses преобразует команды маркеров в DTO
func ModelToMarkerResponses(cmds []models.MarkerCommand) []MarkerResponse {
	out := make([]MarkerResponse, len(cmds))
	for i, cmd := range cmds {
		out[i] = MarkerResponse{
			GroupID:   cmd.GroupID,
			RecordID:  cmd.RecordID,
			Position:  coordinateResponse(cmd.Position),
			Radius:    cmd.Radius,
			Color:     cmd.Color,
			Popup:     cmd.Popup,
			Visible:   cmd.Visible,
			OpenPopup: cmd.OpenPopup,
		}
	}
	return out
}

// ModelToBoundaryResponses преобразует команды слоев границ в DTO
func ModelToBoundaryResponses(cmds []models.BoundaryCommand) []BoundaryResponse {
	out := make([]BoundaryResponse, len(cmds))
	for i, cmd := range cmds {
		out[i] = BoundaryResponse{
			Name:        cmd.Name,
			Kind:        string(cmd.Kind),
			Color:       cmd.Style.Color,
			Weight:      cmd.Style.Weight,
			FillOpacity: cmd.Style.FillOpacity,
			Visible:     cmd.Visible,
		}
	}
	return out
}

func optionsResponse(opts models.FilterOptions) OptionsResponse {
	resp := OptionsResponse{Subdivisions: opts.Subdivisions, NAPs: opts.NAPs}
	if resp.Subdivisions == nil {
		resp.Subdivisions = []string{}
	}
	if resp.NAPs == nil {
		resp.NAPs = []string{}
	}
	return resp
}

// ModelToDrawBatchResponse преобразует пакет команд в DTO для ответа
func ModelToDrawBatchResponse(batch models.DrawBatch) *DrawBatchResponse {
	resp := &DrawBatchResponse{
		Reason:        batch.Reason,
		Markers:       ModelToMarkerResponses(batch.Markers),
		ClosePopups:   batch.ClosePopups,
		RevertAfterMs: batch.RevertAfter.Milliseconds(),
	}
	if len(batch.Boundaries) > 0 {
		resp.Boundaries = ModelToBoundaryResponses(batch.Boundaries)
	}
	if len(batch.Revert) > 0 {
		resp.Revert = ModelToMarkerResponses(batch.Revert)
	}
	if batch.View != nil {
		resp.View = &ViewResponse{Center: coordinateResponse(batch.View.Center), Zoom: batch.View.Zoom}
	}
	if batch.Options != nil {
		opts := optionsResponse(*batch.Options)
		resp.Options = &opts
	}
	return resp
}

// ModelToSearchResponse преобразует результат поиска в DTO
func ModelToSearchResponse(result models.LocateResult) *SearchResponse {
	resp := &SearchResponse{Found: result.Found, Query: result.Query}
	if !result.Found {
		return resp
	}
	recordID, groupID := result.RecordID, result.GroupID
	resp.RecordID = &recordID
	resp.GroupID = &groupID
	if result.Batch != nil {
		resp.Batch = ModelToDrawBatchResponse(*result.Batch)
	}
	return resp
}

// MarkersToFeatureCollection представляет команды маркеров как точки GeoJSON
func MarkersToFeatureCollection(cmds []models.MarkerCommand) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, cmd := range cmds {
		f := geojson.NewFeature(orb.Point{cmd.Position.Longitude, cmd.Position.Latitude})
		f.Properties["group_id"] = cmd.GroupID.String()
		f.Properties["record_id"] = cmd.RecordID
		f.Properties["radius"] = cmd.Radius
		f.Properties["color"] = cmd.Color
		f.Properties["popup"] = cmd.Popup
		f.Properties["visible"] = cmd.Visible
		fc.Append(f)
	}
	return fc
}

// DTOToFilterState преобразует DTO фильтра в доменную модель
func DTOToFilterState(dto FilterRequest) models.FilterState {
	return models.FilterState{Subdivision: dto.Subdivision, NAP: dto.NAP}
}
