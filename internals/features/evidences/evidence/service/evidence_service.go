package service

import (
	"context"
	"errors"
	"log"
	"time"

	"construction_backend/internals/constants"
	database "construction_backend/internals/databases"
	"construction_backend/internals/features/evidences/evidence/dto"
	"construction_backend/internals/features/evidences/evidence/model"
	progressModel "construction_backend/internals/features/progress/progress/model"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Options struct {
	ThumbnailSize int
}

type Service struct {
	DB   *gorm.DB
	Opts Options
	Now  func() time.Time
}

func New(db *gorm.DB, opts Options) *Service {
	if opts.ThumbnailSize <= 0 {
		opts.ThumbnailSize = 320
	}
	return &Service{DB: db, Opts: opts, Now: time.Now}
}

// metadata columns, everything except the blobs
var listColumns = []string{
	"id", "file_name", "original_file_name", "content_type",
	"file_size", "progress_id", "upload_date",
}

func (s *Service) find(ctx context.Context, id uint, withBlobs bool) (*model.EvidenceModel, error) {
	q := s.DB.WithContext(ctx)
	if !withBlobs {
		q = q.Select(listColumns)
	}
	var e model.EvidenceModel
	err := q.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Evidence", id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) fileNameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var n int64
	q := s.DB.WithContext(ctx).Model(&model.EvidenceModel{}).Where("file_name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (s *Service) progressExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&progressModel.ProgressModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// checkFile runs the checks shared by upload and replace and returns the
// stored file name.
func (s *Service) checkFile(ctx context.Context, in dto.FileInput, exceptID uint) (string, error) {
	if len(in.Data) == 0 {
		return "", apperr.BadRequest("%s", constants.ErrEmptyUpload)
	}
	if !constants.IsImageContentType(in.ContentType) {
		return "", apperr.BadRequest("%s", constants.ErrOnlyImages)
	}
	name := helper.SanitizeFilename(in.FileName)
	if name == "" {
		name = constants.DefaultEvidenceName
	}
	taken, err := s.fileNameTaken(ctx, name, exceptID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", apperr.AlreadyExists("%s", constants.FileNameTaken(name))
	}
	return name, nil
}

// thumbnail is best effort; formats we cannot decode get none.
func (s *Service) thumbnail(name string, data []byte) []byte {
	thumb, err := helper.MakeThumbnail(data, s.Opts.ThumbnailSize)
	if err != nil {
		log.Printf("[INFO] no thumbnail for %s: %v", name, err)
		return nil
	}
	return thumb
}

func (s *Service) Upload(ctx context.Context, in dto.FileInput) (*model.EvidenceModel, error) {
	name, err := s.checkFile(ctx, in, 0)
	if err != nil {
		return nil, err
	}
	ok, err := s.progressExists(ctx, in.ProgressID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Progress", in.ProgressID)
	}

	e := &model.EvidenceModel{
		FileName:         name,
		OriginalFileName: in.FileName,
		ContentType:      in.ContentType,
		FileSize:         int64(len(in.Data)),
		Content:          in.Data,
		Thumbnail:        s.thumbnail(name, in.Data),
		ProgressID:       in.ProgressID,
		UploadDate:       s.Now(),
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(e).Error; err != nil {
		return nil, database.WrapWriteError(err)
	}
	log.Printf("[SUCCESS] Evidence uploaded: id=%d file=%s size=%d", e.ID, e.FileName, e.FileSize)
	return e, nil
}

// Replace swaps the stored image. Keeping the evidence's own file name is
// not a clash.
func (s *Service) Replace(ctx context.Context, id uint, in dto.FileInput) (*model.EvidenceModel, error) {
	e, err := s.find(ctx, id, false)
	if err != nil {
		return nil, err
	}
	name, err := s.checkFile(ctx, in, e.ID)
	if err != nil {
		return nil, err
	}
	if in.ProgressID != 0 && in.ProgressID != e.ProgressID {
		ok, err := s.progressExists(ctx, in.ProgressID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("Progress", in.ProgressID)
		}
		e.ProgressID = in.ProgressID
	}

	e.FileName = name
	e.OriginalFileName = in.FileName
	e.ContentType = in.ContentType
	e.FileSize = int64(len(in.Data))
	e.Content = in.Data
	e.Thumbnail = s.thumbnail(name, in.Data)
	e.UploadDate = s.Now()
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(e).Error; err != nil {
		return nil, database.WrapWriteError(err)
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*model.EvidenceModel, error) {
	return s.find(ctx, id, true)
}

func (s *Service) Thumbnail(ctx context.Context, id uint) ([]byte, error) {
	e, err := s.find(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if len(e.Thumbnail) == 0 {
		return nil, apperr.NotFound("Thumbnail", id)
	}
	return e.Thumbnail, nil
}

func (s *Service) List(ctx context.Context) ([]model.EvidenceModel, error) {
	var list []model.EvidenceModel
	err := s.DB.WithContext(ctx).Select(listColumns).Find(&list).Error
	return list, err
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	e, err := s.find(ctx, id, false)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(&model.EvidenceModel{}, e.ID).Error
}
