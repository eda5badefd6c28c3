package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// AdminDataService manages owner-side content that belongs to no module,
// grouped by the dataType key inside each document. Payloads are stored
// unvalidated.
type AdminDataService interface {
	List(ctx context.Context, projectID uuid.UUID, dataType string) ([]model.DynamicData, error)
	Get(ctx context.Context, projectID uuid.UUID, itemID string) (*model.DynamicData, error)
	Create(ctx context.Context, projectID uuid.UUID, dataType string, payload map[string]any) (*model.DynamicData, error)
	Replace(ctx context.Context, projectID uuid.UUID, dataType string, itemID string, payload map[string]any) (*model.DynamicData, error)
	Delete(ctx context.Context, projectID uuid.UUID, itemID string) error
}

type adminDataService struct {
	records repo.RecordRepo
	notify  *notifier
}

func NewAdminDataService(records repo.RecordRepo, pub EventPublisher, revs RevisionCounter, log *zap.Logger) AdminDataService {
	return &adminDataService{records: records, notify: newNotifier(pub, revs, log)}
}

// tagged copies payload and stamps the path's dataType over whatever it carried.
func tagged(payload map[string]any, dataType string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	out[model.DataTypeKey] = dataType
	return out
}

func (s *adminDataService) List(ctx context.Context, projectID uuid.UUID, dataType string) ([]model.DynamicData, error) {
	if strings.TrimSpace(dataType) == "" {
		return nil, ErrDataTypeRequired
	}
	return s.records.ListByDataType(ctx, projectID, dataType)
}

func (s *adminDataService) Get(ctx context.Context, projectID uuid.UUID, itemID string) (*model.DynamicData, error) {
	id, err := parseRecordID(itemID)
	if err != nil {
		return nil, err
	}
	d, err := s.records.Get(ctx, projectID, nil, id)
	return d, notFound(err)
}

func (s *adminDataService) Create(ctx context.Context, projectID uuid.UUID, dataType string, payload map[string]any) (*model.DynamicData, error) {
	if strings.TrimSpace(dataType) == "" {
		return nil, ErrDataTypeRequired
	}
	d := &model.DynamicData{
		ProjectID: projectID,
		Data:      tagged(payload, dataType),
	}
	if err := s.records.Create(ctx, d); err != nil {
		return nil, err
	}

	s.notify.recordChanged(ctx, RecordEvent{
		Type: EventRecordCreated, ProjectID: projectID, DataType: dataType,
		RecordID: d.ID, Data: d.Data, At: d.CreatedAt,
	})
	return d, nil
}

func (s *adminDataService) Replace(ctx context.Context, projectID uuid.UUID, dataType string, itemID string, payload map[string]any) (*model.DynamicData, error) {
	if strings.TrimSpace(dataType) == "" {
		return nil, ErrDataTypeRequired
	}
	id, err := parseRecordID(itemID)
	if err != nil {
		return nil, err
	}
	d, err := s.records.Replace(ctx, projectID, nil, id, tagged(payload, dataType))
	if err != nil {
		return nil, notFound(err)
	}

	s.notify.recordChanged(ctx, RecordEvent{
		Type: EventRecordUpdated, ProjectID: projectID, DataType: dataType,
		RecordID: d.ID, Data: d.Data, At: d.UpdatedAt,
	})
	return d, nil
}

func (s *adminDataService) Delete(ctx context.Context, projectID uuid.UUID, itemID string) error {
	id, err := parseRecordID(itemID)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, projectID, nil, id); err != nil {
		return notFound(err)
	}

	s.notify.recordChanged(ctx, RecordEvent{Type: EventRecordDeleted, ProjectID: projectID, RecordID: id})
	return nil
}
