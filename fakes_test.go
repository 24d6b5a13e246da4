package forumhub

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/coregx/forumhub/model"
)

// memTopicRepository is an in-memory TopicRepository with a unique fingerprint.
type memTopicRepository struct {
	mu      sync.Mutex
	nextID  int64
	topics  map[int64]model.Topic
	failErr error
}

func newMemTopicRepository() *memTopicRepository {
	return &memTopicRepository{topics: make(map[int64]model.Topic)}
}

func (r *memTopicRepository) fingerprintTaken(fp string, exceptID int64) bool {
	for id, t := range r.topics {
		if id != exceptID && t.Fingerprint == fp {
			return true
		}
	}
	return false
}

func (r *memTopicRepository) Create(_ context.Context, m *model.Topic) (*model.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	if r.fingerprintTaken(m.Fingerprint, 0) {
		return nil, ErrDuplicateTopic
	}
	r.nextID++
	m.ID = r.nextID
	r.topics[m.ID] = *m
	return m, nil
}

func (r *memTopicRepository) ExistsByTitleAndMessage(_ context.Context, title, message string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return false, r.failErr
	}
	return r.fingerprintTaken(model.TopicFingerprint(title, message), 0), nil
}

func (r *memTopicRepository) Load(_ context.Context, id int64) (model.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return model.Topic{}, r.failErr
	}
	t, ok := r.topics[id]
	if !ok {
		return model.Topic{}, ErrNoData
	}
	return t, nil
}

func (r *memTopicRepository) List(_ context.Context, req model.PageRequest) (model.Page[model.Topic], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return model.Page[model.Topic]{}, r.failErr
	}
	all := make([]model.Topic, 0, len(r.topics))
	for _, t := range r.topics {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start := len(all)
	if req.Offset() < int64(len(all)) {
		start = int(req.Offset())
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}
	return model.NewPage(all[start:end], req, int64(len(all))), nil
}

func (r *memTopicRepository) Update(_ context.Context, m *model.Topic) (*model.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	if _, ok := r.topics[m.ID]; !ok {
		return nil, ErrNoData
	}
	if r.fingerprintTaken(m.Fingerprint, m.ID) {
		return nil, ErrDuplicateTopic
	}
	r.topics[m.ID] = *m
	return m, nil
}

func (r *memTopicRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.topics[id]; !ok {
		return ErrNoData
	}
	delete(r.topics, id)
	return nil
}

type memUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
	loads  int
}

func newMemUserRepository(users ...model.User) *memUserRepository {
	r := &memUserRepository{users: make(map[int64]model.User)}
	for _, u := range users {
		_, _ = r.Save(context.Background(), u)
	}
	return r
}

func (r *memUserRepository) Load(_ context.Context, id int64) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	u, ok := r.users[id]
	if !ok {
		return model.User{}, ErrNoData
	}
	return u, nil
}

func (r *memUserRepository) GetByLogin(_ context.Context, login string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == login {
			return u, nil
		}
	}
	return model.User{}, ErrNoData
}

func (r *memUserRepository) Save(_ context.Context, m model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == m.Login && u.ID != m.ID {
			return model.User{}, ErrDuplicateLogin
		}
	}
	if m.ID == 0 {
		r.nextID++
		m.ID = r.nextID
	}
	r.users[m.ID] = m
	return m, nil
}

type recordingNotifications struct {
	created []int64
	updated []int64
	deleted []int64
	err     error
}

func (n *recordingNotifications) NotifyTopicCreated(_ context.Context, t model.Topic) error {
	n.created = append(n.created, t.ID)
	return n.err
}

func (n *recordingNotifications) NotifyTopicUpdated(_ context.Context, t model.Topic) error {
	n.updated = append(n.updated, t.ID)
	return n.err
}

func (n *recordingNotifications) NotifyTopicDeleted(_ context.Context, t model.Topic) error {
	n.deleted = append(n.deleted, t.ID)
	return n.err
}

var errStorageDown = errors.New("storage down")
