package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quocthai179/my-succulent-store/internal/core/cart"
	"github.com/quocthai179/my-succulent-store/internal/core/catalog"
	"github.com/quocthai179/my-succulent-store/internal/core/chat"
	"github.com/quocthai179/my-succulent-store/internal/core/config"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

type pane int

const (
	shopPane pane = iota
	cartPane
	chatPane
	helpPane
)

// Model projects core state onto the terminal. It owns no domain state:
// products, cart, and transcript are re-read from their owning components
// whenever a message reports a change.
type Model struct {
	cfg     *config.Config
	catalog *catalog.Cache
	carts   *cart.Synchronizer
	bridge  *chat.Bridge

	pane   pane
	width  int
	height int

	// Shop pane
	products       []models.Product // current filtered projection
	categories     []string
	activeCategory int // index into categories, -1 = all
	shopCursor     int
	degraded       bool
	loaded         bool

	// Cart pane
	cartView   models.Cart
	cartCursor int
	offline    bool

	// Chat pane
	chatInput    textinput.Model
	chatViewport viewport.Model
	chatWaiting  bool

	statusNote string
}

func New(cfg *config.Config, cache *catalog.Cache, carts *cart.Synchronizer, bridge *chat.Bridge) Model {
	input := textinput.New()
	input.Placeholder = "Nhắn tin cho trợ lý..."
	input.CharLimit = 500

	return Model{
		cfg:            cfg,
		catalog:        cache,
		carts:          carts,
		bridge:         bridge,
		pane:           shopPane,
		activeCategory: -1,
		chatInput:      input,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalog(m.catalog), loadCart(m.carts))
}

// applyFilter re-projects the shop pane from the held catalog.
func (m Model) applyFilter() Model {
	if m.activeCategory < 0 || m.activeCategory >= len(m.categories) {
		m.activeCategory = -1
		m.products = m.catalog.Filter(nil)
	} else {
		m.products = m.catalog.Filter([]string{m.categories[m.activeCategory]})
	}
	if m.shopCursor >= len(m.products) {
		m.shopCursor = 0
	}
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatViewport = newChatViewport(m.bridge.Transcript(), m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case catalogLoadedMsg:
		m.categories = msg.categories
		m.degraded = msg.degraded
		m.loaded = true
		return m.applyFilter(), nil

	case cartUpdatedMsg:
		// Whichever snapshot arrives last is the one rendered.
		m.cartView = msg.cart
		m.offline = msg.err != nil
		if m.cartCursor >= len(m.cartView.Items) {
			m.cartCursor = 0
		}
		return m, nil

	case chatRepliedMsg:
		m.chatWaiting = false
		m.cartView = msg.cart
		if m.cartCursor >= len(m.cartView.Items) {
			m.cartCursor = 0
		}
		m.chatViewport = newChatViewport(m.bridge.Transcript(), m.width, m.height)
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Chat input swallows most keys while focused
	if m.pane == chatPane {
		return m.updateChat(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		return m.nextPane(), nil

	case "?":
		m.pane = helpPane
		return m, nil

	case "esc":
		if m.pane == helpPane {
			m.pane = shopPane
		}
		return m, nil

	case "r":
		// Re-fetch the catalog; the held set is replaced wholesale.
		return m, loadCatalog(m.catalog)
	}

	switch m.pane {
	case shopPane:
		return m.updateShop(msg)
	case cartPane:
		return m.updateCart(msg)
	}
	return m, nil
}

func (m Model) nextPane() Model {
	switch m.pane {
	case shopPane:
		m.pane = cartPane
	case cartPane:
		m.pane = chatPane
		m.chatInput.Focus()
		m.chatViewport = newChatViewport(m.bridge.Transcript(), m.width, m.height)
	default:
		m.pane = shopPane
		m.chatInput.Blur()
	}
	return m
}

func (m Model) View() string {
	switch m.pane {
	case shopPane:
		return m.viewShop()
	case cartPane:
		return m.viewCart()
	case chatPane:
		return m.viewChat()
	case helpPane:
		return m.viewHelp()
	}
	return ""
}

// statusLine mirrors the storefront's status element: product count when
// the catalog loaded, a degraded notice when it fell back, an offline
// marker when the last cart mutation failed.
func (m Model) statusLine() string {
	switch {
	case !m.loaded:
		return statusStyle.Render("Đang tải sản phẩm...")
	case m.degraded:
		return degradedStyle.Render("Không thể kết nối backend, hiển thị dữ liệu mẫu.")
	case m.offline:
		return degradedStyle.Render("Mất kết nối — giỏ hàng chưa được cập nhật.")
	default:
		return statusStyle.Render(statusProductCount(m.catalog.Count()))
	}
}
