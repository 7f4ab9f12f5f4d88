// SPDX-License-Identifier: MIT

package rtl

import (
	"strconv"
	"text/template"
)

var funcs = template.FuncMap{
	"f2":  func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"dec": func(v int) int { return v - 1 },
}

var (
	moduleTmpl    = template.Must(template.New("module").Funcs(funcs).Parse(moduleSrc))
	testbenchTmpl = template.Must(template.New("testbench").Funcs(funcs).Parse(testbenchSrc))
)

const moduleSrc = `//==============================================================================
// VESA Timing Generator
//
{{- if .Timestamp}}
// Generated: {{.Timestamp}}
{{- end}}
// Generator: {{.Generator}}
//
// Timing:
//   Resolution:  {{.HActive}}x{{.VActive}}
//   Refresh:     {{f2 .RefreshRate}} Hz
//   Pixel clock: {{f2 .PixelClock}} MHz
//   Blanking:    {{.Blanking}}
//
// Horizontal:
//   H_ACTIVE      = {{.HActive}}
//   H_FRONT_PORCH = {{.HFrontPorch}}
//   H_SYNC_PULSE  = {{.HSyncPulse}}
//   H_BACK_PORCH  = {{.HBackPorch}}
//   H_TOTAL       = {{.HTotal}}
//
// Vertical:
//   V_ACTIVE      = {{.VActive}}
//   V_FRONT_PORCH = {{.VFrontPorch}}
//   V_SYNC_PULSE  = {{.VSyncPulse}}
//   V_BACK_PORCH  = {{.VBackPorch}}
//   V_TOTAL       = {{.VTotal}}
//==============================================================================

module {{.Name}} (
    input  wire        clk,           // pixel clock ({{f2 .PixelClock}} MHz)
    input  wire        rst_n,         // asynchronous reset, active low

    output reg         hsync,         // horizontal sync, active low
    output reg         vsync,         // vertical sync, active low
    output reg         de,            // data enable
    output reg         frame_valid,   // active line

    output reg  [{{dec .HWidth}}:0]  h_count,
    output reg  [{{dec .VWidth}}:0]  v_count
);

localparam H_ACTIVE      = {{.HActive}};
localparam H_FRONT_PORCH = {{.HFrontPorch}};
localparam H_SYNC_PULSE  = {{.HSyncPulse}};
localparam H_BACK_PORCH  = {{.HBackPorch}};
localparam H_TOTAL       = {{.HTotal}};

localparam V_ACTIVE      = {{.VActive}};
localparam V_FRONT_PORCH = {{.VFrontPorch}};
localparam V_SYNC_PULSE  = {{.VSyncPulse}};
localparam V_BACK_PORCH  = {{.VBackPorch}};
localparam V_TOTAL       = {{.VTotal}};

localparam H_SYNC_START  = H_ACTIVE + H_FRONT_PORCH;
localparam H_SYNC_END    = H_SYNC_START + H_SYNC_PULSE;

localparam V_SYNC_START  = V_ACTIVE + V_FRONT_PORCH;
localparam V_SYNC_END    = V_SYNC_START + V_SYNC_PULSE;

// horizontal counter
always @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
        h_count <= {{.HWidth}}'d0;
    end else if (h_count == H_TOTAL - 1) begin
        h_count <= {{.HWidth}}'d0;
    end else begin
        h_count <= h_count + 1'b1;
    end
end

// vertical counter, advanced at the end of each line
always @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
        v_count <= {{.VWidth}}'d0;
    end else if (h_count == H_TOTAL - 1) begin
        if (v_count == V_TOTAL - 1) begin
            v_count <= {{.VWidth}}'d0;
        end else begin
            v_count <= v_count + 1'b1;
        end
    end
end

always @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
        hsync <= 1'b1;
    end else begin
        hsync <= !(h_count >= H_SYNC_START && h_count < H_SYNC_END);
    end
end

always @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
        vsync <= 1'b1;
    end else begin
        vsync <= !(v_count >= V_SYNC_START && v_count < V_SYNC_END);
    end
end

always @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
        de <= 1'b0;
    end else begin
        de <= (h_count < H_ACTIVE) && (v_count < V_ACTIVE);
    end
end

always @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
        frame_valid <= 1'b0;
    end else begin
        frame_valid <= (v_count < V_ACTIVE);
    end
end

endmodule
`

const testbenchSrc = `//==============================================================================
// VESA Timing Generator Testbench
//
{{- if .Timestamp}}
// Generated: {{.Timestamp}}
{{- end}}
// Generator: {{.Generator}}
//==============================================================================

` + "`" + `timescale 1ns / 1ps

module tb_{{.Name}};

localparam CLK_PERIOD = {{.Period}};  // ns
localparam H_TOTAL    = {{.HTotal}};
localparam V_TOTAL    = {{.VTotal}};
localparam FRAMES     = {{.Frames}};

reg clk;
reg rst_n;

wire hsync;
wire vsync;
wire de;
wire frame_valid;
wire [{{dec .HWidth}}:0] h_count;
wire [{{dec .VWidth}}:0] v_count;

initial begin
    clk = 1'b0;
    forever #(CLK_PERIOD/2) clk = ~clk;
end

initial begin
    rst_n = 1'b0;
    #(CLK_PERIOD * 10);
    rst_n = 1'b1;
end

{{.Name}} u_{{.Name}} (
    .clk         (clk),
    .rst_n       (rst_n),
    .hsync       (hsync),
    .vsync       (vsync),
    .de          (de),
    .frame_valid (frame_valid),
    .h_count     (h_count),
    .v_count     (v_count)
);

integer frame_count;

initial begin
    frame_count = 0;
    @(posedge rst_n);
    forever begin
        @(negedge vsync);
        frame_count = frame_count + 1;
        $display("Time: %t ns - Frame %0d started", $time, frame_count);
        if (frame_count >= FRAMES) begin
            #(CLK_PERIOD * H_TOTAL * 10);
            $display("Simulation completed: %0d frames", frame_count);
            $finish;
        end
    end
end

initial begin
    $dumpfile("tb_{{.Name}}.vcd");
    $dumpvars(0, tb_{{.Name}});
end

// timeout after {{.Timeout}} frame times
initial begin
    #(CLK_PERIOD * H_TOTAL * V_TOTAL * {{.Timeout}});
    $display("ERROR: simulation timeout");
    $finish;
end

endmodule
`
