package tui

func (m Model) viewHelp() string {
	help := `
Sen Đá Shop - Trợ giúp
═══════════════════════

CỬA HÀNG
────────
  ↑/↓, j/k     Chọn sản phẩm
  ←/→, [/]     Chuyển nhóm sản phẩm
  Enter        Thêm vào giỏ hàng
  r            Tải lại danh mục
  Tab          Sang giỏ hàng

GIỎ HÀNG
────────
  ↑/↓, j/k     Chọn dòng
  +/-          Tăng/giảm số lượng
  x            Xóa khỏi giỏ
  y            Sao chép phiếu giỏ hàng
  Tab          Sang trợ lý

TRỢ LÝ ĐẶT HÀNG
───────────────
  Nhập tin nhắn rồi Enter để gửi
  ↑/↓          Cuộn lịch sử
  Esc          Quay lại cửa hàng

Esc để quay lại, q để thoát
`

	return helpStyle.Render(help)
}
