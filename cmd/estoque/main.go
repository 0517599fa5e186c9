package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/auth"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/catalog"
	"github.com/Marcos6585/Sistema-de-estoque/internal/application/ledger"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/infrastructure/postgres"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/config"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/logger"
)

// cliente de console: opera direto sobre o banco via os casos de uso,
// sem passar pela API HTTP. O painel web roda em processo separado.
type console struct {
	in           *bufio.Scanner
	productUC    *catalog.ProductUseCase
	userUC       *catalog.UserUseCase
	ledgerUC     *ledger.UseCase
	authUC       *auth.UseCase
	user         *entity.User
	historyLimit int    // ESTOQUE_HISTORY_LIMIT
	dashboardURL string // endereço anunciado ao abrir o painel
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "warn", // console limpo: só avisos e erros do stack
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro: banco de dados indisponível:", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool, log); err != nil {
		fmt.Fprintln(os.Stderr, "erro: criação do schema:", err)
		os.Exit(1)
	}
	if err := postgres.SeedDefaultAdmin(ctx, pool, log); err != nil {
		fmt.Fprintln(os.Stderr, "erro: seed do administrador padrão:", err)
		os.Exit(1)
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	c := &console{
		in:        bufio.NewScanner(os.Stdin),
		productUC: catalog.NewProductUseCase(productRepo),
		userUC:    catalog.NewUserUseCase(userRepo),
		ledgerUC:  ledger.NewUseCase(txRunner, movementRepo),
		authUC: auth.NewUseCase(userRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
		historyLimit: cfg.Stock.HistoryLimit,
		dashboardURL: dashboardURL(cfg.HTTP),
	}

	fmt.Println("== Sistema de Estoque ==")
	if !c.login() {
		os.Exit(1)
	}
	c.loop(ctx)
}

// login pede credenciais até autenticar (3 tentativas).
func (c *console) login() bool {
	for attempt := 0; attempt < 3; attempt++ {
		name := c.prompt("Usuário: ")
		password := c.prompt("Senha: ")
		user, err := c.authUC.Authenticate(name, password)
		if err != nil {
			fmt.Println("usuário ou senha incorretos")
			continue
		}
		c.user = user
		fmt.Printf("Bem-vindo, %s (%s)\n", user.Name, user.Role)
		return true
	}
	fmt.Println("muitas tentativas, saindo")
	return false
}

func (c *console) loop(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("1. Listar produtos")
		fmt.Println("2. Cadastrar produto")
		fmt.Println("3. Editar produto")
		fmt.Println("4. Registrar entrada")
		fmt.Println("5. Registrar saída")
		fmt.Println("6. Histórico de movimentações")
		fmt.Println("7. Abrir painel web")
		if c.user.IsAdmin() {
			fmt.Println("8. Remover produto")
			fmt.Println("9. Gerenciar usuários")
		}
		fmt.Println("0. Sair")

		switch c.prompt("Opção: ") {
		case "1":
			c.listProducts()
		case "2":
			c.createProduct()
		case "3":
			c.updateProduct()
		case "4":
			c.registerMovement(ctx, entity.MovementEntrada)
		case "5":
			c.registerMovement(ctx, entity.MovementSaida)
		case "6":
			c.listMovements(ctx)
		case "7":
			c.openDashboard()
		case "8":
			if c.user.IsAdmin() {
				c.deleteProduct()
			}
		case "9":
			if c.user.IsAdmin() {
				c.manageUsers()
			}
		case "0":
			fmt.Println("até logo")
			return
		default:
			fmt.Println("opção inválida")
		}
	}
}

func (c *console) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) promptInt64(label string) (int64, bool) {
	n, err := strconv.ParseInt(c.prompt(label), 10, 64)
	if err != nil {
		fmt.Println("número inválido")
		return 0, false
	}
	return n, true
}

func (c *console) promptDecimal(label string) (decimal.Decimal, bool) {
	s := c.prompt(label)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		fmt.Println("valor inválido")
		return decimal.Zero, false
	}
	return d, true
}

func (c *console) listProducts() {
	products, err := c.productUC.List(catalog.Filter{})
	if err != nil {
		fmt.Println("erro:", err)
		return
	}
	if len(products) == 0 {
		fmt.Println("nenhum produto cadastrado")
		return
	}
	fmt.Printf("%-36s  %-25s  %-15s  %8s  %10s\n", "ID", "Nome", "Categoria", "Qtd", "Preço")
	for _, p := range products {
		fmt.Printf("%-36s  %-25s  %-15s  %8d  %10s\n", p.ID, p.Name, p.Category, p.Quantity, p.UnitPrice.StringFixed(2))
	}
}

func (c *console) readProductInput() (catalog.ProductInput, bool) {
	in := catalog.ProductInput{
		Name:     c.prompt("Nome: "),
		Category: c.prompt("Categoria: "),
	}
	qty, ok := c.promptInt64("Quantidade inicial: ")
	if !ok {
		return in, false
	}
	in.Quantity = qty
	price, ok := c.promptDecimal("Preço unitário (ex: 12.50): ")
	if !ok {
		return in, false
	}
	in.UnitPrice = price
	in.Supplier = c.prompt("Fornecedor (opcional): ")
	return in, true
}

func (c *console) createProduct() {
	in, ok := c.readProductInput()
	if !ok {
		return
	}
	product, err := c.productUC.Create(in)
	if err != nil {
		fmt.Println("erro:", err)
		return
	}
	fmt.Println("produto cadastrado:", product.ID)
}

func (c *console) updateProduct() {
	id := c.prompt("ID do produto: ")
	in, ok := c.readProductInput()
	if !ok {
		return
	}
	if _, err := c.productUC.Update(id, in); err != nil {
		fmt.Println("erro:", err)
		return
	}
	fmt.Println("produto atualizado")
}

func (c *console) deleteProduct() {
	id := c.prompt("ID do produto: ")
	if c.prompt("Confirma a remoção? (s/N) ") != "s" {
		return
	}
	if err := c.productUC.Delete(id); err != nil {
		fmt.Println("erro:", err)
		return
	}
	fmt.Println("produto removido (histórico de movimentações preservado)")
}

func (c *console) registerMovement(ctx context.Context, kind string) {
	id := c.prompt("ID do produto: ")
	qty, ok := c.promptInt64("Quantidade: ")
	if !ok {
		return
	}
	result, err := c.ledgerUC.ApplyMovement(ctx, ledger.MovementInput{
		ProductID:  id,
		Quantity:   qty,
		Kind:       kind,
		ActingUser: c.user.Name,
		Note:       c.prompt("Observação (opcional): "),
	})
	if err != nil {
		fmt.Println("erro:", err)
		return
	}
	fmt.Printf("movimentação registrada; nova quantidade: %d\n", result.NewQuantity)
}

func (c *console) listMovements(ctx context.Context) {
	movements, err := c.ledgerUC.ListMovements(ctx, c.historyLimit)
	if err != nil {
		fmt.Println("erro:", err)
		return
	}
	if len(movements) == 0 {
		fmt.Println("nenhuma movimentação registrada")
		return
	}
	fmt.Printf("%-19s  %-7s  %8s  %-25s  %s\n", "Data", "Tipo", "Qtd", "Produto", "Usuário")
	for _, m := range movements {
		name := m.ProductName
		if name == "" {
			name = "(produto removido)"
		}
		fmt.Printf("%-19s  %-7s  %8d  %-25s  %s\n",
			m.OccurredAt.Format("2006-01-02 15:04:05"), m.Kind, m.Quantity, name, m.ActingUser)
	}
}

func (c *console) manageUsers() {
	switch c.prompt("(l)istar, (c)adastrar ou (r)emover usuário? ") {
	case "l":
		users, err := c.userUC.List()
		if err != nil {
			fmt.Println("erro:", err)
			return
		}
		for _, u := range users {
			fmt.Printf("%-36s  %-20s  %s\n", u.ID, u.Name, u.Role)
		}
	case "c":
		name := c.prompt("Nome: ")
		password := c.prompt("Senha: ")
		role := c.prompt("Papel (administrador/funcionario): ")
		user, err := c.userUC.Create(name, password, role)
		if err != nil {
			fmt.Println("erro:", err)
			return
		}
		fmt.Println("usuário cadastrado:", user.ID)
	case "r":
		id := c.prompt("ID do usuário: ")
		if err := c.userUC.Delete(id, c.user.ID); err != nil {
			fmt.Println("erro:", err)
			return
		}
		fmt.Println("usuário removido")
	}
}

// openDashboard inicia o servidor do painel como processo independente,
// apontando para o mesmo banco (mesmas variáveis de ambiente). Falha na
// localização ou no start não derruba o cliente.
func (c *console) openDashboard() {
	path, err := findAPIBinary()
	if err != nil {
		fmt.Println("não foi possível localizar o binário do painel:", err)
		return
	}
	cmd := exec.Command(path)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		fmt.Println("não foi possível iniciar o painel:", err)
		return
	}
	// Processo desacoplado: o painel continua vivo se o console fechar.
	if err := cmd.Process.Release(); err != nil {
		fmt.Println("aviso: falha ao desacoplar o processo do painel:", err)
	}
	fmt.Println("painel iniciado; acesse", c.dashboardURL)
}

// dashboardURL monta o endereço anunciado ao usuário quando o painel sobe.
// Host de escuta "0.0.0.0" (todas as interfaces) vira localhost na mensagem.
func dashboardURL(cfg config.HTTPConfig) string {
	host := cfg.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, cfg.Port)
}

// findAPIBinary procura o binário `api` ao lado do executável atual e
// depois no PATH.
func findAPIBinary() (string, error) {
	if self, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(self), "api")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return exec.LookPath("api")
}
