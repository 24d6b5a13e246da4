package relica

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coregx/forumhub"
	"github.com/coregx/forumhub/model"
	"github.com/coregx/relica"
)

// countRow receives the result of a COUNT(*) AS n query.
type countRow struct {
	N int64 `db:"n"`
}

// TopicRepository implements forumhub.TopicRepository using Relica.
type TopicRepository struct {
	db          *relica.DB
	tablePrefix string
}

// NewTopicRepository creates a new TopicRepository with default table prefix.
func NewTopicRepository(sqlDB *sql.DB, driverName string) *TopicRepository {
	return &TopicRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: DefaultTablePrefix}
}

// NewTopicRepositoryWithPrefix creates a new TopicRepository with custom table prefix.
func NewTopicRepositoryWithPrefix(sqlDB *sql.DB, driverName, prefix string) *TopicRepository {
	return &TopicRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: prefix}
}

func (r *TopicRepository) tableName() string {
	return r.tablePrefix + "topic"
}

// Create inserts a new topic. Returns forumhub.ErrDuplicateTopic when the
// fingerprint index rejects the row.
func (r *TopicRepository) Create(ctx context.Context, m *model.Topic) (*model.Topic, error) {
	// Insert using Model() API - auto-populates m.ID
	err := r.db.WithContext(ctx).Model(m).Table(r.tableName()).Insert()
	if isUniqueViolation(err) {
		return m, forumhub.ErrDuplicateTopic
	}
	if err != nil {
		return m, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to insert topic", err)
	}
	return m, nil
}

// ExistsByTitleAndMessage reports whether a topic with the same pair exists.
func (r *TopicRepository) ExistsByTitleAndMessage(ctx context.Context, title, message string) (bool, error) {
	var row countRow
	err := r.db.WithContext(ctx).Select("COUNT(*) AS n").
		From(r.tableName()).
		Where("fingerprint = ?", model.TopicFingerprint(title, message)).
		One(&row)
	if err != nil {
		return false, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to check topic fingerprint", err)
	}
	return row.N > 0, nil
}

// Load retrieves a topic by ID.
func (r *TopicRepository) Load(ctx context.Context, id int64) (model.Topic, error) {
	var topic model.Topic
	err := r.db.WithContext(ctx).Select("*").From(r.tableName()).Where("id = ?", id).One(&topic)
	if errors.Is(err, sql.ErrNoRows) {
		return topic, forumhub.ErrNoData
	}
	if err != nil {
		return topic, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to load topic", err)
	}
	return topic, nil
}

// List retrieves one page of topics. Ties on the sort column are broken by id
// so that consecutive pages never overlap.
func (r *TopicRepository) List(ctx context.Context, req model.PageRequest) (model.Page[model.Topic], error) {
	column := req.SortColumn()
	if column == "" {
		return model.Page[model.Topic]{}, forumhub.NewError(forumhub.ErrCodeValidation, "unknown sort key: "+req.Sort)
	}
	direction := "ASC"
	if req.Direction == model.SortDesc {
		direction = "DESC"
	}

	var count countRow
	err := r.db.WithContext(ctx).Select("COUNT(*) AS n").From(r.tableName()).One(&count)
	if err != nil {
		return model.Page[model.Topic]{}, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to count topics", err)
	}

	total := count.N
	var topics []model.Topic
	if req.Offset() < total {
		err = r.db.WithContext(ctx).Select("*").
			From(r.tableName()).
			OrderBy(column+" "+direction, "id "+direction).
			Limit(int64(req.Size)).
			Offset(req.Offset()).
			All(&topics)
		if err != nil {
			return model.Page[model.Topic]{}, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to list topics", err)
		}
	}

	return model.NewPage(topics, req, total), nil
}

// Update persists the mutable fields of an existing topic.
func (r *TopicRepository) Update(ctx context.Context, m *model.Topic) (*model.Topic, error) {
	// Update using Model() API - auto WHERE id = ?
	err := r.db.WithContext(ctx).Model(m).Table(r.tableName()).Update()
	if isUniqueViolation(err) {
		return m, forumhub.ErrDuplicateTopic
	}
	if err != nil {
		return m, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to update topic", err)
	}
	return m, nil
}

// Delete permanently removes a topic.
func (r *TopicRepository) Delete(ctx context.Context, id int64) error {
	topic, err := r.Load(ctx, id)
	if err != nil {
		return err
	}

	// Delete using Model() API - auto WHERE id = ?
	err = r.db.WithContext(ctx).Model(&topic).Table(r.tableName()).Delete()
	if err != nil {
		return forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to delete topic", err)
	}
	return nil
}
