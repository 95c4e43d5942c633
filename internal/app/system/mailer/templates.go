// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// WelcomeEmailData holds data for the registration welcome email.
type WelcomeEmailData struct {
	Name string
}

// BuildWelcomeEmail creates the email sent after a successful registration.
func BuildWelcomeEmail(to string, data WelcomeEmailData) Email {
	return Email{
		To:       to,
		Subject:  "Bem-vinda ao Instituto Jussara Kaisel",
		TextBody: buildWelcomeText(data),
		HTMLBody: buildWelcomeHTML(data),
	}
}

func buildWelcomeText(data WelcomeEmailData) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Olá %s,\n\n", data.Name)
	buf.WriteString("Seu cadastro foi realizado com sucesso.\n")
	buf.WriteString("Agora você pode acessar o portal e começar sua jornada de transformação.\n\n")
	buf.WriteString("Com carinho,\nEquipe Instituto Jussara Kaisel\n")
	return buf.String()
}

func buildWelcomeHTML(data WelcomeEmailData) string {
	tmpl := template.Must(template.New("welcome").Parse(welcomeHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const welcomeHTMLTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2 style="color: #DAA520;">Bem-vinda ao Instituto Jussara Kaisel!</h2>
  <p>Olá {{.Name}},</p>
  <p>Seu cadastro foi realizado com sucesso.</p>
  <p>Agora você pode acessar o portal e começar sua jornada de transformação.</p>
  <br>
  <p>Com carinho,<br>Equipe Instituto Jussara Kaisel</p>
</div>`

// EnrollmentEmailData holds data for the new-enrollment notification.
type EnrollmentEmailData struct {
	Name        string
	ProgramName string
	StartDate   time.Time
}

// BuildEnrollmentEmail creates the email sent when a mentee is enrolled in
// a program.
func BuildEnrollmentEmail(to string, data EnrollmentEmailData) Email {
	return Email{
		To:       to,
		Subject:  "Nova Mentoria Atribuída",
		TextBody: buildEnrollmentText(data),
		HTMLBody: buildEnrollmentHTML(data),
	}
}

func buildEnrollmentText(data EnrollmentEmailData) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Olá %s,\n\n", data.Name)
	fmt.Fprintf(&buf, "Você foi inscrita na mentoria: %s\n", data.ProgramName)
	fmt.Fprintf(&buf, "Data de início: %s\n\n", data.StartDate.Format("02/01/2006"))
	buf.WriteString("Acesse o portal para ver mais detalhes.\n\n")
	buf.WriteString("Com carinho,\nEquipe Instituto Jussara Kaisel\n")
	return buf.String()
}

func buildEnrollmentHTML(data EnrollmentEmailData) string {
	tmpl := template.Must(template.New("enrollment").Parse(enrollmentHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, struct {
		Name, ProgramName, StartDate string
	}{data.Name, data.ProgramName, data.StartDate.Format("02/01/2006")})
	return buf.String()
}

const enrollmentHTMLTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2 style="color: #DAA520;">Nova Mentoria Atribuída!</h2>
  <p>Olá {{.Name}},</p>
  <p>Você foi inscrita na mentoria: <strong>{{.ProgramName}}</strong></p>
  <p>Data de início: {{.StartDate}}</p>
  <p>Acesse o portal para ver mais detalhes.</p>
  <br>
  <p>Com carinho,<br>Equipe Instituto Jussara Kaisel</p>
</div>`
