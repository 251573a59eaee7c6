package usecase

import (
	"fmt"
	"html/template"
	"strings"

	"petpal/internal/domain/entity"
)

// Email bodies are rendered server-side with html/template; plain-text
// alternatives ship alongside for clients that reject HTML.

var mailFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("₱%.2f", v) },
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(mailFuncs).Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2 style="color:#e8590c">PetPal</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for your order! We've received it and it is now being processed.</p>
  <h3>Order #{{.Order.ID}}</h3>
  <table style="width:100%;border-collapse:collapse">
    {{range .Order.OrderItems}}
    <tr>
      <td style="padding:6px 0;border-bottom:1px solid #eee">{{.Name}} &times; {{.Quantity}}</td>
      <td style="padding:6px 0;border-bottom:1px solid #eee;text-align:right">{{money .Price}}</td>
    </tr>
    {{end}}
    <tr><td style="padding:6px 0">Items</td><td style="text-align:right">{{money .Order.ItemsPrice}}</td></tr>
    <tr><td style="padding:6px 0">Tax</td><td style="text-align:right">{{money .Order.TaxPrice}}</td></tr>
    <tr><td style="padding:6px 0">Shipping</td><td style="text-align:right">{{money .Order.ShippingPrice}}</td></tr>
    <tr><td style="padding:6px 0"><strong>Total</strong></td><td style="text-align:right"><strong>{{money .Order.TotalPrice}}</strong></td></tr>
  </table>
  <p>Shipping to: {{.Order.ShippingInfo.Address}}, {{.Order.ShippingInfo.City}}, {{.Order.ShippingInfo.Country}}</p>
  <p>We'll let you know as soon as it ships.</p>
  <p>— The PetPal Team</p>
</div>`))

var statusTmpl = template.Must(template.New("status").Funcs(mailFuncs).Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2 style="color:#e8590c">PetPal</h2>
  <p>Hi {{.Name}},</p>
  <p>Your order <strong>#{{.Order.ID}}</strong> is now <strong>{{.Order.OrderStatus}}</strong>.</p>
  <p>Total: {{money .Order.TotalPrice}}</p>
  <p>— The PetPal Team</p>
</div>`))

var deliveredTmpl = template.Must(template.New("delivered").Funcs(mailFuncs).Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2 style="color:#e8590c">PetPal</h2>
  <p>Hi {{.Name}},</p>
  <p>Great news! Your order <strong>#{{.Order.ID}}</strong> has been delivered.</p>
  <p>We hope your pet loves it. If you have a moment, we'd really appreciate a review.</p>
  {{if .ReviewURL}}<p><a href="{{.ReviewURL}}" style="color:#e8590c">Leave a review</a></p>{{end}}
  <p>— The PetPal Team</p>
</div>`))

type mailData struct {
	Name      string
	Order     *entity.Order
	ReviewURL string
}

func renderConfirmationMail(order *entity.Order, name string) (subject, text, html string, err error) {
	subject = fmt.Sprintf("PetPal order confirmation #%s", order.ID)
	html, err = renderMail(confirmationTmpl, mailData{Name: name, Order: order})
	if err != nil {
		return "", "", "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for your order! Order #%s is being processed.\n\n", name, order.ID)
	for _, item := range order.OrderItems {
		fmt.Fprintf(&b, "  %s x %d - ₱%.2f\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "\nItems: ₱%.2f\nTax: ₱%.2f\nShipping: ₱%.2f\nTotal: ₱%.2f\n\n— The PetPal Team\n",
		order.ItemsPrice, order.TaxPrice, order.ShippingPrice, order.TotalPrice)
	return subject, b.String(), html, nil
}

func renderStatusMail(order *entity.Order, name string) (subject, text, html string, err error) {
	subject = fmt.Sprintf("PetPal order #%s is now %s", order.ID, order.OrderStatus)
	html, err = renderMail(statusTmpl, mailData{Name: name, Order: order})
	if err != nil {
		return "", "", "", err
	}
	text = fmt.Sprintf("Hi %s,\n\nYour order #%s is now %s.\nTotal: ₱%.2f\n\n— The PetPal Team\n",
		name, order.ID, order.OrderStatus, order.TotalPrice)
	return subject, text, html, nil
}

func renderDeliveredMail(order *entity.Order, name, frontendURL string) (subject, text, html string, err error) {
	subject = fmt.Sprintf("Your PetPal order #%s has been delivered", order.ID)

	reviewURL := ""
	if frontendURL != "" && len(order.OrderItems) > 0 {
		reviewURL = fmt.Sprintf("%s/product/%s", strings.TrimRight(frontendURL, "/"), order.OrderItems[0].ProductID)
	}

	html, err = renderMail(deliveredTmpl, mailData{Name: name, Order: order, ReviewURL: reviewURL})
	if err != nil {
		return "", "", "", err
	}

	text = fmt.Sprintf("Hi %s,\n\nYour order #%s has been delivered. We'd love a review!\n", name, order.ID)
	if reviewURL != "" {
		text += fmt.Sprintf("Leave one at %s\n", reviewURL)
	}
	text += "\n— The PetPal Team\n"
	return subject, text, html, nil
}

func renderMail(tmpl *template.Template, data mailData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
