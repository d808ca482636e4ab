package services

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/andrewbantly/leasepeek-server/internal/dtos"
	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/rentroll"
	"github.com/andrewbantly/leasepeek-server/internal/repositories"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// RentRollService interface
type RentRollService interface {
	ProcessUpload(ctx context.Context, userID, fileName string, file io.Reader) (string, error)
	Read(ctx context.Context, userID, objectID string) (*models.RentRollDocument, error)
	ListBasic(ctx context.Context, userID string) ([]dtos.BasicPropertyData, error)
	Delete(ctx context.Context, userID, objectID string) error

	UpdateBasic(ctx context.Context, userID string, req dtos.UpdateBasicRequest) error
	UpdateFloorPlans(ctx context.Context, userID string, req dtos.UpdateFloorPlansRequest) error
	UpdateRenovations(ctx context.Context, userID string, req dtos.UpdateRenovationsRequest) error
	UpdateChargeTypes(ctx context.Context, userID string, req dtos.UpdateChargeTypesRequest) error
	UpdateStatuses(ctx context.Context, userID string, req dtos.UpdateStatusesRequest) error
}

type rentRollService struct {
	repo repositories.RentRollRepository
}

func NewRentRollService(repo repositories.RentRollRepository) RentRollService {
	return &rentRollService{repo: repo}
}

// ProcessUpload runs the full ingestion pipeline against an uploaded
// workbook and persists the resulting document. Returns the hex ObjectID
// of the stored document.
func (s *rentRollService) ProcessUpload(ctx context.Context, userID, fileName string, file io.Reader) (string, error) {
	g, err := grid.FromXLSX(file)
	if err != nil {
		return "", fmt.Errorf("reading workbook: %w", err)
	}

	doc, err := rentroll.Ingest(g, userID, fileName)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("storing document: %w", err)
	}
	return id.Hex(), nil
}

func (s *rentRollService) Read(ctx context.Context, userID, objectID string) (*models.RentRollDocument, error) {
	id, err := parseObjectID(objectID)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	if doc == nil {
		return nil, utils.ErrNotFound
	}
	return doc, nil
}

func (s *rentRollService) ListBasic(ctx context.Context, userID string) ([]dtos.BasicPropertyData, error) {
	docs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	basics := make([]dtos.BasicPropertyData, 0, len(docs))
	for _, doc := range docs {
		basics = append(basics, dtos.BasicPropertyData{
			ObjectID:       doc.ID.Hex(),
			Location:       doc.Location,
			AsOf:           doc.AsOf,
			TotalUnits:     doc.TotalUnits,
			UnitsConfirmed: doc.UnitsConfirmed,
			Vacancy:        doc.Vacancy,
			Floorplans:     doc.Floorplans,
		})
	}
	return basics, nil
}

func (s *rentRollService) Delete(ctx context.Context, userID, objectID string) error {
	id, err := parseObjectID(objectID)
	if err != nil {
		return err
	}
	return s.translateRepoErr(s.repo.Delete(ctx, userID, id))
}

func (s *rentRollService) UpdateBasic(ctx context.Context, userID string, req dtos.UpdateBasicRequest) error {
	id, err := parseObjectID(req.ObjectID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	if req.AsOf != "" {
		fields["asOf"] = req.AsOf
	}
	if req.Market != "" {
		fields["market"] = req.Market
	}
	if req.BuildingName != "" {
		fields["location.building"] = req.BuildingName
	}
	if req.UnitsConfirmed != nil {
		fields["unitsConfirmed"] = *req.UnitsConfirmed
	}
	if req.AddressLine1 != "" {
		fields["location.addressLine1"] = req.AddressLine1
	}
	if req.AddressLine2 != "" {
		fields["location.addressLine2"] = req.AddressLine2
	}
	if req.City != "" {
		fields["location.city"] = req.City
	}
	if req.State != "" {
		fields["location.state"] = req.State
	}
	if req.ZipCode != "" {
		fields["location.zipCode"] = req.ZipCode
	}
	if len(fields) == 0 {
		return nil
	}
	return s.translateRepoErr(s.repo.SetFields(ctx, userID, id, fields))
}

func (s *rentRollService) UpdateFloorPlans(ctx context.Context, userID string, req dtos.UpdateFloorPlansRequest) error {
	id, err := parseObjectID(req.ObjectID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	for _, fp := range req.FloorPlans {
		prefix := "floorplans." + fp.PlanCode + "."
		fields[prefix+"planName"] = fp.PlanName
		fields[prefix+"planType"] = fp.PlanType
		fields[prefix+"beds"] = fp.Beds
		fields[prefix+"baths"] = fp.Baths
	}
	if len(fields) == 0 {
		return nil
	}
	return s.translateRepoErr(s.repo.SetFields(ctx, userID, id, fields))
}

// UpdateRenovations marks the listed floor plans renovated. Plans absent
// from the list are reset, so the request is the full renovated set.
func (s *rentRollService) UpdateRenovations(ctx context.Context, userID string, req dtos.UpdateRenovationsRequest) error {
	id, err := parseObjectID(req.ObjectID)
	if err != nil {
		return err
	}

	doc, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("fetching document: %w", err)
	}
	if doc == nil {
		return utils.ErrNotFound
	}

	renovated := make(map[string]bool, len(req.RenovatedFloorPlans))
	for _, plan := range req.RenovatedFloorPlans {
		renovated[plan] = true
	}

	fields := bson.M{}
	for plan := range doc.Floorplans {
		fields["floorplans."+plan+".renovated"] = renovated[plan]
	}
	if len(fields) == 0 {
		return nil
	}
	return s.translateRepoErr(s.repo.SetFields(ctx, userID, id, fields))
}

func (s *rentRollService) UpdateChargeTypes(ctx context.Context, userID string, req dtos.UpdateChargeTypesRequest) error {
	id, err := parseObjectID(req.ObjectID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	for code, summary := range req.Charges {
		fields["charges."+code+".type"] = summary.Type
	}
	if len(fields) == 0 {
		return nil
	}
	return s.translateRepoErr(s.repo.SetFields(ctx, userID, id, fields))
}

func (s *rentRollService) UpdateStatuses(ctx context.Context, userID string, req dtos.UpdateStatusesRequest) error {
	id, err := parseObjectID(req.ObjectID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	for status, entry := range req.UnitStatuses {
		fields["vacancy."+status+".type"] = entry.Type
	}
	if len(fields) == 0 {
		return nil
	}
	return s.translateRepoErr(s.repo.SetFields(ctx, userID, id, fields))
}

/* ---------- internals ---------- */

func parseObjectID(objectID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(objectID)
	if err != nil {
		return primitive.NilObjectID, utils.ErrInvalidObjectID
	}
	return id, nil
}

func (s *rentRollService) translateRepoErr(err error) error {
	if err == nil {
		return nil
	}
	if repositories.IsNotFound(err) {
		return utils.ErrNotFound
	}
	return err
}
