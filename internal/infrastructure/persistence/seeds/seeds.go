package seeds

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"openfare/internal/domain/sla"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/logger"
)

//go:embed data/demo.yaml
var demoFixtures []byte

type userFixture struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type operatorFixture struct {
	Name               string  `yaml:"name"`
	TrustScore         float64 `yaml:"trust_score"`
	ComplaintCount     int     `yaml:"complaint_count"`
	AvgRefundTimeHours int     `yaml:"avg_refund_time_hours"`
}

type refundFixture struct {
	Amount              float64 `yaml:"amount"`
	Status              string  `yaml:"status"`
	CreatedHoursAgo     float64 `yaml:"created_hours_ago"`
	ProcessedHoursAgo   float64 `yaml:"processed_hours_ago"`
	DeadlineDaysFromNow int     `yaml:"deadline_days_from_now"`
}

type ticketFixture struct {
	PNR      string         `yaml:"pnr"`
	Operator string         `yaml:"operator"`
	User     string         `yaml:"user"`
	Status   string         `yaml:"status"`
	Amount   float64        `yaml:"amount"`
	Policy   string         `yaml:"policy"`
	Refund   *refundFixture `yaml:"refund"`
}

type messageFixture struct {
	Sender   string  `yaml:"sender"`
	Content  string  `yaml:"content"`
	HoursAgo float64 `yaml:"hours_ago"`
}

type complaintFixture struct {
	PNR             string           `yaml:"pnr"`
	Operator        string           `yaml:"operator"`
	User            string           `yaml:"user"`
	Reason          string           `yaml:"reason"`
	Status          string           `yaml:"status"`
	CreatedHoursAgo float64          `yaml:"created_hours_ago"`
	Messages        []messageFixture `yaml:"messages"`
}

type slaConfigFixture struct {
	Type           string  `yaml:"type"`
	ThresholdHours float64 `yaml:"threshold_hours"`
	Penalty        float64 `yaml:"penalty"`
}

type trustScoreLogFixture struct {
	Operator  string  `yaml:"operator"`
	OldScore  float64 `yaml:"old_score"`
	NewScore  float64 `yaml:"new_score"`
	Reason    string  `yaml:"reason"`
	SourceID  string  `yaml:"source_id"`
	SourcePNR string  `yaml:"source_pnr"`
	HoursAgo  float64 `yaml:"hours_ago"`
}

type fixtures struct {
	Users          []userFixture                `yaml:"users"`
	Operators      []operatorFixture            `yaml:"operators"`
	Policies       map[string]map[string]string `yaml:"policies"`
	Tickets        []ticketFixture              `yaml:"tickets"`
	Complaints     []complaintFixture           `yaml:"complaints"`
	SLAConfigs     []slaConfigFixture           `yaml:"sla_configs"`
	TrustScoreLogs []trustScoreLogFixture       `yaml:"trust_score_logs"`
}

// Seeder loads the embedded demo fixtures into the database. Every insert
// is keyed on a natural identifier (email, name, pnr, type, source_id) so
// running it twice leaves the data unchanged.
type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, logger logger.Interface) *Seeder {
	return &Seeder{db: db, logger: logger}
}

func (s *Seeder) Seed() error {
	var f fixtures
	if err := yaml.Unmarshal(demoFixtures, &f); err != nil {
		return fmt.Errorf("failed to parse demo fixtures: %w", err)
	}

	now := time.Now()

	userIDs, err := s.seedUsers(f.Users)
	if err != nil {
		return err
	}

	operatorIDs, err := s.seedOperators(f.Operators)
	if err != nil {
		return err
	}

	refundIDs, err := s.seedTickets(f, userIDs, operatorIDs, now)
	if err != nil {
		return err
	}

	if err := s.seedComplaints(f.Complaints, userIDs, operatorIDs, now); err != nil {
		return err
	}

	if err := s.seedSLAConfigs(f.SLAConfigs); err != nil {
		return err
	}

	if err := s.seedTrustScoreLogs(f.TrustScoreLogs, operatorIDs, refundIDs, now); err != nil {
		return err
	}

	s.logger.Infow("demo seed completed",
		"users", len(f.Users),
		"operators", len(f.Operators),
		"tickets", len(f.Tickets),
		"complaints", len(f.Complaints))
	return nil
}

func (s *Seeder) seedUsers(users []userFixture) (map[string]uint, error) {
	ids := make(map[string]uint, len(users))

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}

		model := models.UserModel{
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			PasswordHash: string(hash),
		}
		if err := s.db.Where(models.UserModel{Email: u.Email}).
			FirstOrCreate(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		ids[u.Email] = model.ID
	}
	return ids, nil
}

func (s *Seeder) seedOperators(operators []operatorFixture) (map[string]uint, error) {
	ids := make(map[string]uint, len(operators))

	for _, op := range operators {
		model := models.OperatorModel{
			Name:               op.Name,
			TrustScore:         op.TrustScore,
			ComplaintCount:     op.ComplaintCount,
			AvgRefundTimeHours: op.AvgRefundTimeHours,
		}
		if err := s.db.Where(models.OperatorModel{Name: op.Name}).
			FirstOrCreate(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to seed operator %s: %w", op.Name, err)
		}
		ids[op.Name] = model.ID
	}
	return ids, nil
}

// seedTickets returns a pnr -> refund ID map so the trust score log fixtures
// can reference the refunds they penalized.
func (s *Seeder) seedTickets(f fixtures, userIDs, operatorIDs map[string]uint, now time.Time) (map[string]uint, error) {
	refundIDs := make(map[string]uint)

	for _, t := range f.Tickets {
		policy, ok := f.Policies[t.Policy]
		if !ok {
			return nil, fmt.Errorf("ticket %s references unknown policy %q", t.PNR, t.Policy)
		}
		policyJSON, err := json.Marshal(policy)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal policy %q: %w", t.Policy, err)
		}

		operatorID, ok := operatorIDs[t.Operator]
		if !ok {
			return nil, fmt.Errorf("ticket %s references unknown operator %q", t.PNR, t.Operator)
		}
		userID, ok := userIDs[t.User]
		if !ok {
			return nil, fmt.Errorf("ticket %s references unknown user %q", t.PNR, t.User)
		}

		model := models.TicketModel{
			PNR:                t.PNR,
			OperatorID:         operatorID,
			UserID:             &userID,
			Status:             t.Status,
			Amount:             t.Amount,
			CancellationPolicy: datatypes.JSON(policyJSON),
			CreatedAt:          now.Add(-24 * time.Hour),
		}
		if t.Refund != nil {
			refundCreated := now.Add(-time.Duration(t.Refund.CreatedHoursAgo * float64(time.Hour)))
			deadline := now.AddDate(0, 0, t.Refund.DeadlineDaysFromNow)
			model.RefundAmount = &t.Refund.Amount
			model.RefundDeadline = &deadline
			model.CreatedAt = refundCreated.Add(-8 * time.Hour)
		}

		if err := s.db.Where(models.TicketModel{PNR: t.PNR}).
			FirstOrCreate(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to seed ticket %s: %w", t.PNR, err)
		}

		if t.Refund == nil {
			continue
		}

		refundCreated := now.Add(-time.Duration(t.Refund.CreatedHoursAgo * float64(time.Hour)))
		refund := models.RefundModel{
			TicketID:  model.ID,
			Status:    t.Refund.Status,
			Amount:    t.Refund.Amount,
			CreatedAt: refundCreated,
		}
		if t.Refund.ProcessedHoursAgo > 0 {
			processedAt := now.Add(-time.Duration(t.Refund.ProcessedHoursAgo * float64(time.Hour)))
			refund.ProcessedAt = &processedAt
		}
		if err := s.db.Where(models.RefundModel{TicketID: model.ID}).
			FirstOrCreate(&refund).Error; err != nil {
			return nil, fmt.Errorf("failed to seed refund for %s: %w", t.PNR, err)
		}
		refundIDs[t.PNR] = refund.ID
	}
	return refundIDs, nil
}

func (s *Seeder) seedComplaints(complaints []complaintFixture, userIDs, operatorIDs map[string]uint, now time.Time) error {
	for _, c := range complaints {
		operatorID, ok := operatorIDs[c.Operator]
		if !ok {
			return fmt.Errorf("complaint on %s references unknown operator %q", c.PNR, c.Operator)
		}
		userID, ok := userIDs[c.User]
		if !ok {
			return fmt.Errorf("complaint on %s references unknown user %q", c.PNR, c.User)
		}

		createdAt := now.Add(-time.Duration(c.CreatedHoursAgo * float64(time.Hour)))
		model := models.ComplaintModel{
			PNR:        c.PNR,
			OperatorID: operatorID,
			UserID:     &userID,
			Reason:     c.Reason,
			Status:     c.Status,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		}
		if err := s.db.Where(models.ComplaintModel{PNR: c.PNR, Reason: c.Reason}).
			FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed complaint on %s: %w", c.PNR, err)
		}

		for _, m := range c.Messages {
			senderID, ok := userIDs[m.Sender]
			if !ok {
				return fmt.Errorf("message on %s references unknown sender %q", c.PNR, m.Sender)
			}
			message := models.MessageModel{
				ComplaintID: model.ID,
				SenderID:    senderID,
				Content:     m.Content,
				CreatedAt:   now.Add(-time.Duration(m.HoursAgo * float64(time.Hour))),
			}
			if err := s.db.Where(models.MessageModel{
				ComplaintID: model.ID,
				SenderID:    senderID,
				Content:     m.Content,
			}).FirstOrCreate(&message).Error; err != nil {
				return fmt.Errorf("failed to seed message on %s: %w", c.PNR, err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedSLAConfigs(configs []slaConfigFixture) error {
	for _, c := range configs {
		model := models.SLAConfigModel{
			Type:           c.Type,
			ThresholdHours: c.ThresholdHours,
			Penalty:        c.Penalty,
		}
		if err := s.db.Where(models.SLAConfigModel{Type: c.Type}).
			FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed SLA config %s: %w", c.Type, err)
		}
	}
	return nil
}

func (s *Seeder) seedTrustScoreLogs(logs []trustScoreLogFixture, operatorIDs, refundIDs map[string]uint, now time.Time) error {
	for _, l := range logs {
		operatorID, ok := operatorIDs[l.Operator]
		if !ok {
			return fmt.Errorf("trust score log references unknown operator %q", l.Operator)
		}

		sourceID := l.SourceID
		if sourceID == "" && l.SourcePNR != "" {
			refundID, ok := refundIDs[l.SourcePNR]
			if !ok {
				return fmt.Errorf("trust score log references pnr %q without a seeded refund", l.SourcePNR)
			}
			sourceID = sla.RefundSourceID(refundID)
		}
		if sourceID == "" {
			return fmt.Errorf("trust score log for %q has no source", l.Operator)
		}

		model := models.TrustScoreLogModel{
			OperatorID: operatorID,
			OldScore:   l.OldScore,
			NewScore:   l.NewScore,
			Reason:     l.Reason,
			SourceID:   sourceID,
			CreatedAt:  now.Add(-time.Duration(l.HoursAgo * float64(time.Hour))),
		}
		if err := s.db.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "source_id"}},
				DoNothing: true,
			}).
			Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed trust score log %s: %w", sourceID, err)
		}
	}
	return nil
}
