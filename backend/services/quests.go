package services

import (
	"context"

	"questboard/backend/models"
	"questboard/backend/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// QuestReward is the point bonus for completing a quest for the first time.
const QuestReward = 100

// Activity is what quest conditions are evaluated against.
type Activity struct {
	Tasks     int64
	DoneTasks int64
	Posts     int64
}

// QuestDefinition is one entry of the fixed quest catalogue.
type QuestDefinition struct {
	ID        uint
	Title     string
	Content   string
	Satisfied func(Activity) bool
}

const (
	QuestTaskStarter  uint = 1
	QuestTaskFinisher uint = 2
	QuestFirstPost    uint = 3
)

// Catalogue lists the quests in id order.
var Catalogue = []QuestDefinition{
	{
		ID:        QuestTaskStarter,
		Title:     "Task Starter",
		Content:   "Create at least 3 tasks.",
		Satisfied: func(a Activity) bool { return a.Tasks >= 3 },
	},
	{
		ID:        QuestTaskFinisher,
		Title:     "Task Finisher",
		Content:   "Complete at least 3 tasks.",
		Satisfied: func(a Activity) bool { return a.DoneTasks >= 3 },
	},
	{
		ID:        QuestFirstPost,
		Title:     "First Post",
		Content:   "Post a message to the board.",
		Satisfied: func(a Activity) bool { return a.Posts >= 1 },
	},
}

// QuestStatus tells which catalogue conditions currently hold for a user.
type QuestStatus struct {
	TaskStarter  bool `json:"task_starter"`
	TaskFinisher bool `json:"task_finisher"`
	FirstPost    bool `json:"first_post"`
}

func (s *QuestStatus) set(questID uint, ok bool) {
	switch questID {
	case QuestTaskStarter:
		s.TaskStarter = ok
	case QuestTaskFinisher:
		s.TaskFinisher = ok
	case QuestFirstPost:
		s.FirstPost = ok
	}
}

type QuestService struct {
	db     *gorm.DB
	quests *repository.QuestRepository
}

func NewQuestService(db *gorm.DB) *QuestService {
	if db == nil {
		panic("database connection cannot be nil for QuestService")
	}
	return &QuestService{db: db, quests: repository.NewQuestRepository(db)}
}

// Evaluate checks every catalogue condition for userID. Each satisfied quest is
// recorded at most once and the first record pays QuestReward points. All
// writes happen in one transaction.
func (s *QuestService) Evaluate(ctx context.Context, userID uint) (QuestStatus, error) {
	logCtx := logrus.WithField("user_id", userID)

	var status QuestStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		tasks := repository.NewTaskRepository(tx)
		boards := repository.NewBoardRepository(tx)
		quests := repository.NewQuestRepository(tx)

		if _, err := users.FindByID(ctx, userID); err != nil {
			return err
		}

		counts, err := tasks.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		posts, err := boards.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		activity := Activity{Tasks: counts.Total, DoneTasks: counts.Done, Posts: posts}

		for _, def := range Catalogue {
			ok := def.Satisfied(activity)
			status.set(def.ID, ok)
			if !ok {
				continue
			}

			granted, err := quests.Grant(ctx, userID, def.ID)
			if err != nil {
				return err
			}
			if !granted {
				continue
			}
			if _, err := users.AddPoints(ctx, userID, QuestReward); err != nil {
				return err
			}
			logCtx.WithField("quest_id", def.ID).Info("Quest completed")
		}
		return nil
	})
	if err != nil {
		return QuestStatus{}, mapRepoError(err, "user")
	}
	return status, nil
}

// ListOutstanding returns the quests userID has not completed. The user is not looked up.
func (s *QuestService) ListOutstanding(ctx context.Context, userID uint) ([]models.Quest, error) {
	quests, err := s.quests.ListOutstanding(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "quest")
	}
	return quests, nil
}

func (s *QuestService) ListAll(ctx context.Context) ([]models.Quest, error) {
	quests, err := s.quests.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "quest")
	}
	return quests, nil
}

// SeedCatalogue inserts every catalogue quest whose title is not stored yet and
// returns how many were inserted.
func (s *QuestService) SeedCatalogue(ctx context.Context) (int, error) {
	inserted := 0
	for _, def := range Catalogue {
		quest := &models.Quest{ID: def.ID, Title: def.Title, Content: def.Content}
		ok, err := s.quests.CreateIfTitleAbsent(ctx, quest)
		if err != nil {
			return inserted, mapRepoError(err, "quest")
		}
		if ok {
			inserted++
		}
	}
	logrus.WithField("inserted", inserted).Info("Quest catalogue seeded")
	return inserted, nil
}
