package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/andrewbantly/leasepeek-server/internal/dtos"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/rentroll"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// fakeRentRollRepo is an in-memory RentRollRepository for service tests.
type fakeRentRollRepo struct {
	docs      map[primitive.ObjectID]*models.RentRollDocument
	setFields bson.M
}

func newFakeRentRollRepo() *fakeRentRollRepo {
	return &fakeRentRollRepo{docs: make(map[primitive.ObjectID]*models.RentRollDocument)}
}

func (r *fakeRentRollRepo) Insert(_ context.Context, doc *models.RentRollDocument) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	doc.ID = id
	r.docs[id] = doc
	return id, nil
}

func (r *fakeRentRollRepo) FindByID(_ context.Context, userID string, id primitive.ObjectID) (*models.RentRollDocument, error) {
	doc, ok := r.docs[id]
	if !ok || doc.UserID != userID {
		return nil, nil
	}
	return doc, nil
}

func (r *fakeRentRollRepo) FindByUser(_ context.Context, userID string) ([]models.RentRollDocument, error) {
	var out []models.RentRollDocument
	for _, doc := range r.docs {
		if doc.UserID == userID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (r *fakeRentRollRepo) Delete(_ context.Context, userID string, id primitive.ObjectID) error {
	doc, ok := r.docs[id]
	if !ok || doc.UserID != userID {
		return mongo.ErrNoDocuments
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeRentRollRepo) SetFields(_ context.Context, userID string, id primitive.ObjectID, fields bson.M) error {
	doc, ok := r.docs[id]
	if !ok || doc.UserID != userID {
		return mongo.ErrNoDocuments
	}
	r.setFields = fields
	return nil
}

func rentRollWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Sunset Village Apartments"},
		{"As of 3/15/2024"},
		{"Unit", "Unit Type", "Sq Ft", "Market Rent", "Rent", "Name"},
		{"101", "A1", 800, 1200, 1150, "Alice Smith"},
		{"102", "A1", 800, 1200, 0, "VACANT"},
		{"Totals"},
	}
	for i, row := range rows {
		for j, v := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", ref, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestProcessUploadStoresDocument(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)
	require.NotEmpty(t, objectID)

	doc, err := svc.Read(ctx, "user-1", objectID)
	require.NoError(t, err)
	require.Equal(t, "Sunset Village Apartments", doc.Location.Building)
	require.Equal(t, "03/15/2024", doc.AsOf)
	require.Equal(t, 2, doc.TotalUnits)
}

func TestProcessUploadRejectsHeaderlessWorkbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "quarterly revenue summary"))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	f.Close()

	svc := NewRentRollService(newFakeRentRollRepo())
	_, err := svc.ProcessUpload(context.Background(), "user-1", "summary.xlsx", &buf)
	require.ErrorIs(t, err, rentroll.ErrNoHeaderRow)
}

func TestReadScopedToOwner(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	_, err = svc.Read(ctx, "someone-else", objectID)
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Read(ctx, "user-1", "not-a-hex-id")
	require.ErrorIs(t, err, utils.ErrInvalidObjectID)
}

func TestListBasic(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	_, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	basics, err := svc.ListBasic(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, basics, 1)
	require.Equal(t, 2, basics[0].TotalUnits)
	require.NotEmpty(t, basics[0].ObjectID)

	none, err := svc.ListBasic(ctx, "someone-else")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestDelete(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "someone-else", objectID), utils.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "user-1", objectID))
	require.ErrorIs(t, svc.Delete(ctx, "user-1", objectID), utils.ErrNotFound)
}

func TestUpdateBasicBuildsFieldPaths(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	confirmed := true
	err = svc.UpdateBasic(ctx, "user-1", dtos.UpdateBasicRequest{
		ObjectID:       objectID,
		Market:         "Austin",
		BuildingName:   "Sunset Village",
		UnitsConfirmed: &confirmed,
		City:           "Austin",
		State:          "TX",
	})
	require.NoError(t, err)

	require.Equal(t, "Austin", repo.setFields["market"])
	require.Equal(t, "Sunset Village", repo.setFields["location.building"])
	require.Equal(t, true, repo.setFields["unitsConfirmed"])
	require.Equal(t, "TX", repo.setFields["location.state"])
	require.NotContains(t, repo.setFields, "asOf")
}

func TestUpdateFloorPlansBuildsFieldPaths(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	err = svc.UpdateFloorPlans(ctx, "user-1", dtos.UpdateFloorPlansRequest{
		ObjectID: objectID,
		FloorPlans: []dtos.FloorPlanDetails{
			{PlanCode: "A1", PlanName: "The Aspen", PlanType: "1x1", Beds: 1, Baths: 1},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "The Aspen", repo.setFields["floorplans.A1.planName"])
	require.Equal(t, "1x1", repo.setFields["floorplans.A1.planType"])
	require.Equal(t, 1, repo.setFields["floorplans.A1.beds"])
}

func TestUpdateRenovationsResetsUnlistedPlans(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	err = svc.UpdateRenovations(ctx, "user-1", dtos.UpdateRenovationsRequest{
		ObjectID:            objectID,
		RenovatedFloorPlans: []string{"A1"},
	})
	require.NoError(t, err)
	require.Equal(t, true, repo.setFields["floorplans.A1.renovated"])

	err = svc.UpdateRenovations(ctx, "user-1", dtos.UpdateRenovationsRequest{
		ObjectID: objectID,
	})
	require.NoError(t, err)
	require.Equal(t, false, repo.setFields["floorplans.A1.renovated"])
}

func TestUpdateChargeTypesAndStatuses(t *testing.T) {
	repo := newFakeRentRollRepo()
	svc := NewRentRollService(repo)
	ctx := context.Background()

	objectID, err := svc.ProcessUpload(ctx, "user-1", "rentroll_03-15-24.xlsx", bytes.NewReader(rentRollWorkbook(t)))
	require.NoError(t, err)

	err = svc.UpdateChargeTypes(ctx, "user-1", dtos.UpdateChargeTypesRequest{
		ObjectID: objectID,
		Charges:  map[string]models.ChargeSummary{"petf": {Type: "petRent"}},
	})
	require.NoError(t, err)
	require.Equal(t, "petRent", repo.setFields["charges.petf.type"])

	err = svc.UpdateStatuses(ctx, "user-1", dtos.UpdateStatusesRequest{
		ObjectID:     objectID,
		UnitStatuses: map[string]models.VacancyEntry{"Renewal Hold": {Type: "occupied"}},
	})
	require.NoError(t, err)
	require.Equal(t, "occupied", repo.setFields["vacancy.Renewal Hold.type"])
}
