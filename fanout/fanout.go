package fanout

import (
	"fmt"
	"math"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/greenepidemic/greenepidemic-api/geo"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "fanout")
}

// HomeRadius is the fixed watch radius around a home address.
const HomeRadius = 500.0

// Store is the slice of the datastore the fan-out needs.
type Store interface {
	ListActiveSurveillancePoints() ([]schema.SurveillancePoint, error)
	ListAccountsWithHomeLocation() ([]schema.Account, error)
	GetAccountsByIDs(ids []string) (map[string]*schema.Account, error)
	CreateNotifications(notifications []schema.Notification) (int, error)
}

// NotifyNearby scans every active surveillance point and every home
// address against a report location and bulk inserts one notification
// per match. A user owning several matching points receives one
// notification per point. The scan is linear and runs synchronously in
// the request that created or approved the report.
func NotifyNearby(s Store, report *schema.Report) (int, error) {
	reportLoc := report.Location.ToLocation()

	notifications := make([]schema.Notification, 0)

	points, err := s.ListActiveSurveillancePoints()
	if err != nil {
		return 0, err
	}

	ownerIDs := make([]string, 0, len(points))
	for _, p := range points {
		ownerIDs = append(ownerIDs, p.AccountID)
	}

	owners, err := s.GetAccountsByIDs(ownerIDs)
	if err != nil {
		return 0, err
	}

	for _, point := range points {
		owner, ok := owners[point.AccountID]
		if !ok {
			continue
		}
		if !owner.Profile.Channels.Enabled(report.Category) {
			continue
		}

		distance := geo.Distance(reportLoc, point.Location.ToLocation())
		if distance > point.Radius {
			continue
		}

		notifications = append(notifications,
			buildNotification(owner, report, distance, point.Name))
	}

	homeAccounts, err := s.ListAccountsWithHomeLocation()
	if err != nil {
		return 0, err
	}

	for i := range homeAccounts {
		account := &homeAccounts[i]
		if account.Profile.HomeLocation == nil {
			continue
		}
		if !account.Profile.Channels.Enabled(report.Category) {
			continue
		}

		home := schema.Location{
			Latitude:  account.Profile.HomeLocation.Latitude,
			Longitude: account.Profile.HomeLocation.Longitude,
		}
		distance := geo.Distance(reportLoc, home)
		if distance > HomeRadius {
			continue
		}

		notifications = append(notifications,
			buildNotification(account, report, distance, ""))
	}

	return s.CreateNotifications(notifications)
}

func buildNotification(account *schema.Account, report *schema.Report, distance float64, pointName string) schema.Notification {
	channel := schema.NotificationChannelInApp
	if account.Profile.MessengerChatID != "" {
		channel = schema.NotificationChannelMessenger
	}

	title, body := renderMessage(account.Profile.Language, report, distance, pointName)

	reportID := report.ID
	return schema.Notification{
		AccountID: account.ID.String(),
		ReportID:  &reportID,
		Channel:   channel,
		Title:     title,
		Body:      body,
	}
}

// renderMessage builds the localized notification text; when no
// translation is loaded it falls back to the built-in english wording.
func renderMessage(lang string, report *schema.Report, distance float64, pointName string) (string, string) {
	rounded := int(math.Round(distance))
	loc := utils.NewLocalizer(lang)

	data := map[string]interface{}{
		"Category":  report.Category,
		"Title":     report.Title,
		"Distance":  rounded,
		"PointName": pointName,
	}

	titleID, bodyID := "notification.home.title", "notification.home.body"
	if pointName != "" {
		titleID, bodyID = "notification.surveillance.title", "notification.surveillance.body"
	}

	title, titleErr := loc.Localize(&i18n.LocalizeConfig{MessageID: titleID, TemplateData: data})
	body, bodyErr := loc.Localize(&i18n.LocalizeConfig{MessageID: bodyID, TemplateData: data})
	if titleErr == nil && bodyErr == nil {
		return title, body
	}

	if pointName != "" {
		return fmt.Sprintf("Incident near %s", pointName),
			fmt.Sprintf("A new %s report %q was filed %d m from your surveillance point %s.",
				report.Category, report.Title, rounded, pointName)
	}
	return "Incident near your home",
		fmt.Sprintf("A new %s report %q was filed %d m from your home address.",
			report.Category, report.Title, rounded)
}

// Run performs the fan-out as a best effort side effect: failures are
// logged and swallowed so the triggering request never fails on them.
func Run(s Store, report *schema.Report) {
	count, err := NotifyNearby(s, report)
	if err != nil {
		log.WithError(err).WithField("report_id", report.ID.Hex()).
			Error("notification fan-out failed")
		return
	}
	log.WithFields(logrus.Fields{
		"report_id": report.ID.Hex(),
		"count":     count,
	}).Info("notification fan-out completed")
}
