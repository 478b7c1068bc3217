package request_models

import "ezyvoyage/internal/pipeline"

// ItineraryRequest accepts numbers or numeric strings for the numeric fields.
type ItineraryRequest struct {
	Destination    string              `json:"destination"`
	TravelType     string              `json:"travelType"`
	NumberOfPeople pipeline.FlexNumber `json:"numberOfPeople"`
	NumberOfDays   pipeline.FlexNumber `json:"numberOfDays"`
	Budget         pipeline.FlexNumber `json:"budget"`
}

func (r ItineraryRequest) HasAllFields() bool {
	return r.Destination != "" && r.TravelType != "" &&
		r.NumberOfPeople.Present && r.NumberOfDays.Present && r.Budget.Present
}

func (r ItineraryRequest) Input() pipeline.ItineraryInput {
	return pipeline.ItineraryInput{
		Destination:    r.Destination,
		TravelType:     r.TravelType,
		NumberOfPeople: r.NumberOfPeople,
		NumberOfDays:   r.NumberOfDays,
		Budget:         r.Budget,
	}
}

type SpotsRequest struct {
	Location string `json:"location"`
	SpotType string `json:"spotType"`
}

type AdvisoryRequest struct {
	DestinationCountry string `json:"destinationCountry" binding:"required"`
}
