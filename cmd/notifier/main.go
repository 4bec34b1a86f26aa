// Job - отправка писем
// Очередь notifications -> шаблон -> почтовый релей
// Ошибка отправки логируется и не ретраится: письма best effort
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/aksisonline/mockify/points/internal/db"
	mail "github.com/aksisonline/mockify/points/internal/external/mailer"
	rabbit "github.com/aksisonline/mockify/points/internal/external/rabbitmq"
	model "github.com/aksisonline/mockify/points/internal/models"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	reader, err := rabbit.NewNotifyConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database - email и настройки уведомлений берутся из профиля
	dt, err := db.NewPointsDB(logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}

	// mail relay
	mailer, err := mail.NewMailer()
	if err != nil {
		panic(err)
	}

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("POINTS_NOTIFIER_COUNT")
	if semenv == "" {
		semcount = 3
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 3
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, wg, logger, reader, dt, mailer)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.NotifyConsumer, dt *db.PointsDB, mailer *mail.Mailer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}
			if err := send(ctx, dt, mailer, msg.Body); err != nil {
				logger.Error(err.Error())
				continue
			}
		}
	}
}

// отправка одного уведомления
func send(ctx context.Context, dt *db.PointsDB, mailer *mail.Mailer, body []byte) error {
	n := &model.Notification{}
	if err := json.Unmarshal(body, n); err != nil {
		return err
	}

	settings, err := dt.GetNotificationSettings(ctx, n.User)
	if err != nil {
		return err
	}
	if !settings.EmailEnabled {
		return nil
	}
	if n.Template == "purchase_confirmation" && !settings.PurchaseEmails {
		return nil
	}

	profile, err := dt.GetProfile(ctx, n.User)
	if err != nil {
		return err
	}
	if profile.Basic.Email == "" {
		return fmt.Errorf("user %s has no email", n.User)
	}

	subject, template, ok := mail.Template(n.Template)
	if !ok {
		return fmt.Errorf("unknown template: %s", n.Template)
	}
	vars := n.Variables
	if vars == nil {
		vars = map[string]string{}
	}
	if _, found := vars["name"]; !found {
		vars["name"] = profile.Basic.FullName
	}

	return mailer.Send(ctx, mail.Message{
		Subject:   subject,
		Recipient: profile.Basic.Email,
		Body:      mail.Render(template, vars),
		Variables: vars,
	})
}
