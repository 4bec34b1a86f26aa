package mailer

// HTML-шаблоны писем; плейсхолдеры подставляются до отправки в релей

const PurchaseConfirmation = `<html><body>
<h2>Покупка подтверждена</h2>
<p>Здравствуйте, {{name}}!</p>
<p>Вы приобрели <b>{{item}}</b> (кол-во: {{quantity}}) за <b>{{points}}</b> баллов.</p>
<p>Статус заказа можно посмотреть в личном кабинете.</p>
</body></html>`

const PointsAwarded = `<html><body>
<h2>Баллы начислены</h2>
<p>Здравствуйте, {{name}}!</p>
<p>Вам начислено <b>{{points}}</b> баллов: {{reason}}.</p>
</body></html>`

var templates = map[string]struct {
	Subject string
	Body    string
}{
	"purchase_confirmation": {"Покупка подтверждена", PurchaseConfirmation},
	"points_awarded":        {"Баллы начислены", PointsAwarded},
}

// Шаблон по имени; второй результат false - шаблона нет
func Template(name string) (subject string, body string, ok bool) {
	t, ok := templates[name]
	return t.Subject, t.Body, ok
}
