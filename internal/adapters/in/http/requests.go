package http

import (
	"time"

	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/application/usecases/queries"
)

// ConfirmationsBody carries the safety checklist a caller affirms when
// requesting an assignment. Every flag must be true.
type ConfirmationsBody struct {
	LegalCompliance     bool `json:"legalCompliance"`
	DamageInspection    bool `json:"damageInspection"`
	AccurateDescription bool `json:"accurateDescription"`
	SafetyMeasures      bool `json:"safetyMeasures"`
	TermsAcceptance     bool `json:"termsAcceptance"`
}

// AssignPackageRequest is the body of POST /api/v1/assignments.
type AssignPackageRequest struct {
	PackageID        string            `json:"packageId"`
	TripID           string            `json:"tripId"`
	UserID           string            `json:"userId"`
	Confirmations    ConfirmationsBody `json:"confirmations"`
	ConfirmationType string            `json:"confirmationType"`
	Notification     string            `json:"notification"`
}

// AssignPackageResponse reports the committed assignment: the matched
// package, the trip with its remaining space and the chat opened between
// the parties.
type AssignPackageResponse struct {
	Package AssignedPackage `json:"package"`
	Trip    AssignedTrip    `json:"trip"`
	Chat    AssignmentChat  `json:"chat"`
}

// AssignedPackage is the package as it stands after the assignment.
type AssignedPackage struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	TripID string `json:"tripId"`
}

// AssignedTrip is the trip as it stands after the assignment.
type AssignedTrip struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	AvailableSpaceKg float64 `json:"availableSpaceKg"`
}

// AssignmentChat describes the chat opened for the assignment, including
// the latest message if one has already been sent.
type AssignmentChat struct {
	ID           string           `json:"id"`
	Participants []string         `json:"participants"`
	LastMessage  *ChatMessageBody `json:"lastMessage,omitempty"`
}

// ChatMessageBody is the wire form of a single chat message.
type ChatMessageBody struct {
	SenderID string    `json:"senderId"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sentAt"`
}

// AddressBody is the wire form of a pickup, delivery, origin or
// destination address.
type AddressBody struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// DimensionsBody is the wire form of declared package dimensions.
// Zero values mean undeclared.
type DimensionsBody struct {
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
}

// CreatePackageRequest is the body of POST /api/v1/packages.
type CreatePackageRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Dimensions   DimensionsBody `json:"dimensions"`
	SenderID     string         `json:"senderId"`
	Pickup       AddressBody    `json:"pickup"`
	PickupDate   time.Time      `json:"pickupDate"`
	Delivery     AddressBody    `json:"delivery"`
	DeliveryDate time.Time      `json:"deliveryDate"`
	OfferedPrice float64        `json:"offeredPrice"`
}

// CreateTripRequest is the body of POST /api/v1/trips.
type CreateTripRequest struct {
	Title            string      `json:"title"`
	TravelerID       string      `json:"travelerId"`
	AvailableSpaceKg float64     `json:"availableSpaceKg"`
	Departure        time.Time   `json:"departure"`
	Arrival          time.Time   `json:"arrival"`
	Origin           AddressBody `json:"origin"`
	Destination      AddressBody `json:"destination"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// TripCandidate is one entry of the available-trips lookup response.
type TripCandidate struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	AvailableSpaceKg   float64   `json:"availableSpaceKg"`
	Departure          time.Time `json:"departure"`
	Arrival            time.Time `json:"arrival"`
	OriginCity         string    `json:"originCity"`
	OriginCountry      string    `json:"originCountry"`
	DestinationCity    string    `json:"destinationCity"`
	DestinationCountry string    `json:"destinationCountry"`
}

// PackageCandidate is one entry of the available-packages lookup response.
type PackageCandidate struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	WeightKg     float64   `json:"weightKg"`
	PickupCity   string    `json:"pickupCity"`
	PickupDate   time.Time `json:"pickupDate"`
	DeliveryCity string    `json:"deliveryCity"`
	DeliveryDate time.Time `json:"deliveryDate"`
	OfferedPrice float64   `json:"offeredPrice"`
}

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func tripCandidates(responses []queries.AvailableTripsQueryResponse) []TripCandidate {
	candidates := make([]TripCandidate, len(responses))
	for i, r := range responses {
		candidates[i] = TripCandidate{
			ID:                 r.ID.String(),
			Title:              r.Title,
			AvailableSpaceKg:   r.AvailableSpaceKg,
			Departure:          r.Departure,
			Arrival:            r.Arrival,
			OriginCity:         r.OriginCity,
			OriginCountry:      r.OriginCountry,
			DestinationCity:    r.DestinationCity,
			DestinationCountry: r.DestinationCountry,
		}
	}
	return candidates
}

func packageCandidates(responses []queries.AvailablePackagesQueryResponse) []PackageCandidate {
	candidates := make([]PackageCandidate, len(responses))
	for i, r := range responses {
		candidates[i] = PackageCandidate{
			ID:           r.ID.String(),
			Title:        r.Title,
			Category:     r.Category,
			WeightKg:     r.WeightKg,
			PickupCity:   r.PickupCity,
			PickupDate:   r.PickupDate,
			DeliveryCity: r.DeliveryCity,
			DeliveryDate: r.DeliveryDate,
			OfferedPrice: r.OfferedPrice,
		}
	}
	return candidates
}

func assignmentResponse(result commands.AssignmentResult) AssignPackageResponse {
	tripID := ""
	if assigned := result.Package.Trip(); assigned != nil {
		tripID = assigned.String()
	}

	participants := make([]string, 0, len(result.Chat.Participants()))
	for _, participant := range result.Chat.Participants() {
		participants = append(participants, participant.String())
	}

	var lastMessage *ChatMessageBody
	if message := result.Chat.LastMessage(); message != nil {
		lastMessage = &ChatMessageBody{
			SenderID: message.SenderID.String(),
			Body:     message.Body,
			SentAt:   message.SentAt,
		}
	}

	return AssignPackageResponse{
		Package: AssignedPackage{
			ID:     result.Package.ID().String(),
			Title:  result.Package.Title(),
			Status: result.Package.Status().String(),
			TripID: tripID,
		},
		Trip: AssignedTrip{
			ID:               result.Trip.ID().String(),
			Title:            result.Trip.Title(),
			Status:           result.Trip.Status().String(),
			AvailableSpaceKg: result.Trip.AvailableSpace().Kilograms(),
		},
		Chat: AssignmentChat{
			ID:           result.Chat.ID().String(),
			Participants: participants,
			LastMessage:  lastMessage,
		},
	}
}
