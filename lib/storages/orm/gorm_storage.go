package orm

import (
	"log"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/takeoff/lib/consoles"
	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/storages"
)

type sqlTable interface {
	CacheKey() string
}

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	config *map[string]string

	sqlConfigs   map[string]*sqlConfig
	sqlEstimates map[string]*sqlEstimate
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlEstimate{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func (s *gormStorage) LoadEstimates() ([]*model.Estimate, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var rows []*sqlEstimate
	err := s.db.Order("estimated_at").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlEstimates = createCache(rows)

	return lo.Map(rows, func(r *sqlEstimate, _ int) *model.Estimate { return r.ToModel() }), nil
}

func (s *gormStorage) LoadEstimate(id model.UUID) (*model.Estimate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var row sqlEstimate
	err := s.db.First(&row, "id = ?", string(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return row.ToModel(), nil
}

func (s *gormStorage) WriteEstimate(e *model.Estimate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sqlEstimates == nil {
		s.sqlEstimates = map[string]*sqlEstimate{}
	}

	se := newSqlEstimate(e)
	if !prepareChange(&s.sqlEstimates, se) {
		return nil
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc: func() time.Time { return now },
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(se).Error
	if err != nil {
		return err
	}

	s.sqlEstimates[se.CacheKey()] = se

	return nil
}

func (s *gormStorage) DeleteEstimate(id model.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.db.Delete(&sqlEstimate{}, "id = ?", string(id)).Error
	if err != nil {
		return err
	}

	delete(s.sqlEstimates, string(id))

	return nil
}

// LoadConfig fills the config cache on first use, so it takes the write lock.
func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	result := map[string]string{}

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(sqlConfigs)

	for _, sc := range sqlConfigs {
		result[sc.Key] = sc.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var sqlConfigs []*sqlConfig
	for k, v := range *s.config {
		sc := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, sc) {
			sqlConfigs = append(sqlConfigs, sc)
		}
	}

	if len(sqlConfigs) == 0 {
		return nil
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc: func() time.Time { return now },
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
	if err != nil {
		return err
	}

	addList(&s.sqlConfigs, sqlConfigs)

	return nil
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func addList[T sqlTable](target *map[string]T, toAdd []T) {
	for _, v := range toAdd {
		(*target)[v.CacheKey()] = v
	}
}

// prepareChange keeps the stored timestamps on an unchanged row so the
// DeepEqual below sees it as identical and skips the write.
func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	if *byID == nil {
		*byID = map[string]T{}
	}

	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if reflect.DeepEqual(n, o) {
		return false
	}

	(*byID)[n.CacheKey()] = n
	return true
}
